package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"stocksense/models"
	"stocksense/store"
)

// Store implements store.Store against PostgreSQL.
type Store struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var _ store.Store = (*Store)(nil)

func (s *Store) ListSales(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	query := `
        SELECT id, customer_id, sale_date, total_amount, payment_type, created_at
        FROM sales
        WHERE sale_date BETWEEN $1 AND $2
        ORDER BY sale_date
    `
	rows, err := s.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0)
	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.ID, &sale.CustomerID, &sale.SaleDate,
			&sale.TotalAmount, &sale.PaymentType, &sale.CreatedAt); err != nil {
			log.Printf("⚠️  [STORE] Failed to scan sale: %v", err)
			continue
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

func (s *Store) ListSaleLines(ctx context.Context, from, to time.Time, productIDs ...string) ([]models.SaleLine, error) {
	query := `
        SELECT si.product_id, si.quantity_sold, s.sale_date
        FROM sale_items si
        JOIN sales s ON si.sale_id = s.id
        WHERE s.sale_date BETWEEN $1 AND $2
    `
	args := []interface{}{from, to}
	if len(productIDs) > 0 {
		query += " AND si.product_id = ANY($3)"
		args = append(args, productIDs)
	}
	query += " ORDER BY s.sale_date"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale lines: %w", err)
	}
	defer rows.Close()

	lines := make([]models.SaleLine, 0)
	for rows.Next() {
		var line models.SaleLine
		if err := rows.Scan(&line.ProductID, &line.QuantitySold, &line.SaleDate); err != nil {
			log.Printf("⚠️  [STORE] Failed to scan sale line: %v", err)
			continue
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `
        SELECT id, name, category, unit_price, quantity, low_stock_threshold, reorder_quantity, created_at
        FROM products
        ORDER BY name
    `
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.UnitPrice,
			&p.Quantity, &p.LowStockThreshold, &p.ReorderQuantity, &p.CreatedAt); err != nil {
			log.Printf("⚠️  [STORE] Failed to scan product: %v", err)
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) SearchProducts(ctx context.Context, q string, limit int) ([]models.Product, error) {
	query := `
        SELECT id, name, category, unit_price, quantity, low_stock_threshold, reorder_quantity, created_at
        FROM products
        WHERE name ILIKE '%' || $1 || '%'
        ORDER BY name
        LIMIT $2
    `
	rows, err := s.db.Query(ctx, query, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.UnitPrice,
			&p.Quantity, &p.LowStockThreshold, &p.ReorderQuantity, &p.CreatedAt); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) BestSellers(ctx context.Context, limit int) ([]models.BestSeller, error) {
	query := `
        SELECT p.id, p.name, COALESCE(SUM(si.quantity_sold), 0) AS total_sold
        FROM sale_items si
        JOIN products p ON si.product_id = p.id
        GROUP BY p.id, p.name
        ORDER BY total_sold DESC
        LIMIT $1
    `
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query best sellers: %w", err)
	}
	defer rows.Close()

	sellers := make([]models.BestSeller, 0)
	for rows.Next() {
		var b models.BestSeller
		if err := rows.Scan(&b.ProductID, &b.ProductName, &b.TotalSold); err != nil {
			continue
		}
		sellers = append(sellers, b)
	}
	return sellers, rows.Err()
}

func (s *Store) ListRecentOrders(ctx context.Context, customerID string, limit int) ([]models.Order, error) {
	query := `
        SELECT id, customer_id, status, total_amount, created_at
        FROM orders
        WHERE customer_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := s.db.Query(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.TotalAmount, &o.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) CreateDemandPrediction(ctx context.Context, p models.DemandPrediction) (*models.DemandPrediction, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
        INSERT INTO demand_predictions
            (id, product_id, predicted_demand, suggested_restock, risk_of_stockout, period_start, period_end, generated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, generated_at
    `
	err := s.db.QueryRow(ctx, query, p.ID, p.ProductID, p.PredictedDemand,
		p.SuggestedRestock, p.RiskOfStockout, p.PeriodStart, p.PeriodEnd, p.GeneratedAt).
		Scan(&p.ID, &p.GeneratedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert demand prediction: %w", err)
	}
	return &p, nil
}

func (s *Store) ListDemandPredictions(ctx context.Context, limit int) ([]models.DemandPrediction, error) {
	// NULLIF turns a zero limit into LIMIT NULL, i.e. all rows.
	query := `
        SELECT id, product_id, predicted_demand, suggested_restock, risk_of_stockout, period_start, period_end, generated_at
        FROM demand_predictions
        ORDER BY generated_at DESC
        LIMIT NULLIF($1, 0)
    `
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query demand predictions: %w", err)
	}
	defer rows.Close()

	predictions := make([]models.DemandPrediction, 0)
	for rows.Next() {
		var p models.DemandPrediction
		if err := rows.Scan(&p.ID, &p.ProductID, &p.PredictedDemand, &p.SuggestedRestock,
			&p.RiskOfStockout, &p.PeriodStart, &p.PeriodEnd, &p.GeneratedAt); err != nil {
			log.Printf("⚠️  [STORE] Failed to scan prediction: %v", err)
			continue
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

func (s *Store) CreateNotificationForRole(ctx context.Context, role, title, message, notifType string) (int, error) {
	recipientQuery := `SELECT id FROM users WHERE role = $1 AND is_active = TRUE`
	rows, err := s.db.Query(ctx, recipientQuery, role)
	if err != nil {
		return 0, fmt.Errorf("failed to query recipients: %w", err)
	}
	defer rows.Close()

	recipients := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		recipients = append(recipients, id)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	insertQuery := `
        INSERT INTO notifications (id, recipient_user_id, title, message, notification_type, is_read, created_at)
        VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
    `
	created := 0
	for _, recipientID := range recipients {
		if _, err := s.db.Exec(ctx, insertQuery, uuid.NewString(), recipientID, title, message, notifType); err != nil {
			log.Printf("⚠️  [STORE] Failed to create notification for %s: %v", recipientID, err)
			continue
		}
		created++
	}
	return created, nil
}
