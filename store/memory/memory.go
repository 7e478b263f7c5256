package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"stocksense/models"
	"stocksense/store"
)

// Store is an in-memory store.Store used by tests.
type Store struct {
	mu sync.RWMutex

	Products    []models.Product
	Sales       []models.Sale
	Orders      []models.Order
	Users       []models.User
	Predictions []models.DemandPrediction

	Notifications []models.Notification

	lastGeneratedAt time.Time
}

func New() *Store {
	return &Store{}
}

var _ store.Store = (*Store)(nil)

func (s *Store) ListSales(_ context.Context, from, to time.Time) ([]models.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]models.Sale, 0)
	for _, sale := range s.Sales {
		if !sale.SaleDate.Before(from) && !sale.SaleDate.After(to) {
			sales = append(sales, sale)
		}
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].SaleDate.Before(sales[j].SaleDate) })
	return sales, nil
}

func (s *Store) ListSaleLines(_ context.Context, from, to time.Time, productIDs ...string) ([]models.SaleLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}

	lines := make([]models.SaleLine, 0)
	for _, sale := range s.Sales {
		if sale.SaleDate.Before(from) || sale.SaleDate.After(to) {
			continue
		}
		for _, item := range sale.Items {
			if len(wanted) > 0 && !wanted[item.ProductID] {
				continue
			}
			lines = append(lines, models.SaleLine{
				ProductID:    item.ProductID,
				QuantitySold: item.QuantitySold,
				SaleDate:     sale.SaleDate,
			})
		}
	}
	return lines, nil
}

func (s *Store) ListProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.Products))
	copy(products, s.Products)
	return products, nil
}

func (s *Store) SearchProducts(_ context.Context, query string, limit int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	matches := make([]models.Product, 0)
	for _, p := range s.Products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matches = append(matches, p)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches, nil
}

func (s *Store) BestSellers(_ context.Context, limit int) ([]models.BestSeller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int)
	for _, sale := range s.Sales {
		for _, item := range sale.Items {
			totals[item.ProductID] += item.QuantitySold
		}
	}

	names := make(map[string]string, len(s.Products))
	for _, p := range s.Products {
		names[p.ID] = p.Name
	}

	sellers := make([]models.BestSeller, 0, len(totals))
	for id, sold := range totals {
		sellers = append(sellers, models.BestSeller{ProductID: id, ProductName: names[id], TotalSold: sold})
	}
	sort.Slice(sellers, func(i, j int) bool {
		if sellers[i].TotalSold != sellers[j].TotalSold {
			return sellers[i].TotalSold > sellers[j].TotalSold
		}
		return sellers[i].ProductName < sellers[j].ProductName
	})
	if limit > 0 && len(sellers) > limit {
		sellers = sellers[:limit]
	}
	return sellers, nil
}

func (s *Store) ListRecentOrders(_ context.Context, customerID string, limit int) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0)
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (s *Store) CreateDemandPrediction(_ context.Context, p models.DemandPrediction) (*models.DemandPrediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.GeneratedAt.IsZero() {
		p.GeneratedAt = time.Now().UTC()
	}
	// Clock reads can collide inside one test run; keep generated_at
	// strictly monotonic so "latest per product" stays well defined.
	if !p.GeneratedAt.After(s.lastGeneratedAt) {
		p.GeneratedAt = s.lastGeneratedAt.Add(time.Microsecond)
	}
	s.lastGeneratedAt = p.GeneratedAt

	s.Predictions = append(s.Predictions, p)
	return &p, nil
}

func (s *Store) ListDemandPredictions(_ context.Context, limit int) ([]models.DemandPrediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	predictions := make([]models.DemandPrediction, len(s.Predictions))
	copy(predictions, s.Predictions)
	sort.Slice(predictions, func(i, j int) bool {
		return predictions[i].GeneratedAt.After(predictions[j].GeneratedAt)
	})
	if limit > 0 && len(predictions) > limit {
		predictions = predictions[:limit]
	}
	return predictions, nil
}

func (s *Store) CreateNotificationForRole(_ context.Context, role, title, message, notifType string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, u := range s.Users {
		if u.Role != role || !u.IsActive {
			continue
		}
		s.Notifications = append(s.Notifications, models.Notification{
			ID:              uuid.NewString(),
			RecipientUserID: u.ID,
			Title:           title,
			Message:         message,
			Type:            notifType,
			CreatedAt:       time.Now().UTC(),
		})
		created++
	}
	return created, nil
}
