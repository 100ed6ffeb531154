package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// DeliveryFee is the flat fee added to every order at checkout. The client
// shows it and includes it in the submitted total; the server never
// recomputes a stored total.
var DeliveryFee = decimal.NewFromInt(25)

// Item is a line item in a customer order. ProductName and Price are
// snapshots taken at creation time so the order survives later product
// edits and deactivation.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// NewItem creates a new order line item
func NewItem(orderID, productID uuid.UUID, productName string, quantity int, price valueobject.Money) (*Item, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}

	return &Item{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price.Amount(),
		CreatedAt:   time.Now(),
	}, nil
}

// LineTotal returns Quantity * Price
func (i *Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PriceMoney returns the unit price as Money
func (i *Item) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyILS(i.Price)
}

// Order is a cash-on-delivery customer order. It is the aggregate root for
// checkout and fulfillment operations.
type Order struct {
	shared.BaseAggregateRoot
	CustomerName    string          `gorm:"type:varchar(100);not null"`
	CustomerPhone   string          `gorm:"type:varchar(30);not null"`
	CustomerCity    string          `gorm:"type:varchar(100);not null"`
	CustomerAddress string          `gorm:"type:text;not null"`
	Notes           string          `gorm:"type:text"`
	Status          Status          `gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TelegramSent    bool            `gorm:"not null;default:false"`
	Items           []Item          `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order. TotalAmount is the total submitted
// at checkout (line items plus delivery fee); it is fixed here and never
// recomputed.
func NewOrder(customerName, customerPhone, customerCity, customerAddress, notes string, totalAmount valueobject.Money) (*Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name is required")
	}
	if strings.TrimSpace(customerPhone) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_PHONE", "Customer phone is required")
	}
	if strings.TrimSpace(customerCity) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_CITY", "Customer city is required")
	}
	if strings.TrimSpace(customerAddress) == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ADDRESS", "Customer address is required")
	}
	if !totalAmount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Order total must be positive")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerName:      customerName,
		CustomerPhone:     customerPhone,
		CustomerCity:      customerCity,
		CustomerAddress:   customerAddress,
		Notes:             notes,
		Status:            StatusPending,
		TotalAmount:       totalAmount.Amount(),
		Items:             make([]Item, 0),
	}, nil
}

// AddItem appends a line item with price and name snapshots
func (o *Order) AddItem(productID uuid.UUID, productName string, quantity int, price valueobject.Money) (*Item, error) {
	item, err := NewItem(o.ID, productID, productName, quantity, price)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	return item, nil
}

// UpdateStatus overwrites the order status with any valid value. The
// operator drives fulfillment manually, so every transition is allowed,
// including moving backwards or reviving a cancelled order.
func (o *Order) UpdateStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+status.String())
	}

	o.Status = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// MarkTelegramSent records that the order notification was delivered.
// Called only after a successful post.
func (o *Order) MarkTelegramSent() {
	o.TelegramSent = true
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// ItemsTotal returns the sum of all line totals, without the delivery fee
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].LineTotal())
	}
	return total
}

// TotalMoney returns the stored order total as Money
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyILS(o.TotalAmount)
}

// IsDelivered reports whether the order counts towards revenue
func (o *Order) IsDelivered() bool {
	return o.Status == StatusDelivered
}
