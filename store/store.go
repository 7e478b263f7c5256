package store

import (
	"context"
	"errors"
	"time"

	"stocksense/models"
)

var ErrNotFound = errors.New("not found")

// Store is the ledger/inventory collaborator the engine and assistant read
// from. All methods are read-only except CreateDemandPrediction and
// CreateNotificationForRole.
type Store interface {
	// ListSales returns ledger rows whose sale date falls in [from, to].
	ListSales(ctx context.Context, from, to time.Time) ([]models.Sale, error)
	// ListSaleLines returns sale lines joined to their parent sale's date,
	// optionally restricted to the given product ids.
	ListSaleLines(ctx context.Context, from, to time.Time, productIDs ...string) ([]models.SaleLine, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	// SearchProducts does a case-insensitive substring match on name.
	SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error)
	BestSellers(ctx context.Context, limit int) ([]models.BestSeller, error)
	ListRecentOrders(ctx context.Context, customerID string, limit int) ([]models.Order, error)

	// CreateDemandPrediction appends a prediction snapshot. Existing rows
	// are never updated.
	CreateDemandPrediction(ctx context.Context, p models.DemandPrediction) (*models.DemandPrediction, error)
	// ListDemandPredictions returns snapshots ordered by generated_at desc.
	ListDemandPredictions(ctx context.Context, limit int) ([]models.DemandPrediction, error)

	// CreateNotificationForRole fans a notification out to every active
	// account holding the given role. Returns the number of recipients.
	CreateNotificationForRole(ctx context.Context, role, title, message, notifType string) (int, error)
}
