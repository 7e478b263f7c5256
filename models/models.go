package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Core Models ---

// User represents an account in the system (customer, cashier, or owner/admin).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is an inventory record. The engine reads it and recommends
// changes but never writes quantity itself.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          *string   `json:"category,omitempty"`
	UnitPrice         float64   `json:"unit_price"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold *int      `json:"low_stock_threshold,omitempty"`
	ReorderQuantity   int       `json:"reorder_quantity"`
	CreatedAt         time.Time `json:"created_at"`
}

// Sale is a single completed transaction in the ledger. Immutable once
// created; the source of truth for all revenue and units aggregation.
type Sale struct {
	ID          string     `json:"id"`
	CustomerID  *string    `json:"customer_id,omitempty"`
	SaleDate    time.Time  `json:"sale_date"`
	TotalAmount float64    `json:"total_amount"`
	PaymentType string     `json:"payment_type"`
	CreatedAt   time.Time  `json:"created_at"`
	Items       []SaleItem `json:"items,omitempty"`
}

// SaleItem is an individual line within a Sale.
type SaleItem struct {
	ID           string  `json:"id"`
	SaleID       string  `json:"sale_id"`
	ProductID    string  `json:"product_id"`
	QuantitySold int     `json:"quantity_sold"`
	UnitPrice    float64 `json:"unit_price"`
	Subtotal     float64 `json:"subtotal"`
}

// SaleLine is the flattened sale-item row the store returns for
// product-scoped aggregation: a line joined to its parent sale's date.
type SaleLine struct {
	ProductID    string    `json:"product_id"`
	QuantitySold int       `json:"quantity_sold"`
	SaleDate     time.Time `json:"sale_date"`
}

// Order is a customer-facing order summary, used only by the chat
// assistant's order-status lookup.
type Order struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notification for a user. The engine creates these only through the
// connect-to-cashier chat intent.
type Notification struct {
	ID              string    `json:"id"`
	RecipientUserID string    `json:"recipient_user_id"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	Type            string    `json:"type"`
	IsRead          bool      `json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}

// BestSeller represents a best-selling product by units across all history.
type BestSeller struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	TotalSold   int    `json:"total_sold"`
}
