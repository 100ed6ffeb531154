package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func TestNewOrder(t *testing.T) {
	total := valueobject.NewMoneyILS(decimal.NewFromFloat(284.80))

	t.Run("creates pending order", func(t *testing.T) {
		o, err := NewOrder("Dana Levi", "050-1234567", "Tel Aviv", "Herzl 10", "call before delivery", total)
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.Equal(t, StatusPending, o.Status)
		assert.False(t, o.TelegramSent)
		assert.True(t, o.TotalAmount.Equal(decimal.NewFromFloat(284.80)))
		assert.Empty(t, o.Items)
		assert.NotEmpty(t, o.ID)
	})

	t.Run("fails with missing customer fields", func(t *testing.T) {
		cases := []struct {
			name, phone, city, address string
		}{
			{"", "050", "TLV", "addr"},
			{"Dana", "", "TLV", "addr"},
			{"Dana", "050", "", "addr"},
			{"Dana", "050", "TLV", "  "},
		}
		for _, c := range cases {
			_, err := NewOrder(c.name, c.phone, c.city, c.address, "", total)
			require.Error(t, err)
		}
	})

	t.Run("fails with non-positive total", func(t *testing.T) {
		_, err := NewOrder("Dana", "050", "TLV", "addr", "", valueobject.ZeroILS())
		require.Error(t, err)
	})
}

func TestOrderAddItem(t *testing.T) {
	o := mustOrder(t)
	productID := uuid.New()
	price := valueobject.NewMoneyILS(decimal.NewFromFloat(129.90))

	item, err := o.AddItem(productID, "Wireless Headphones", 2, price)
	require.NoError(t, err)
	assert.Equal(t, o.ID, item.OrderID)
	assert.Equal(t, "Wireless Headphones", item.ProductName)
	assert.True(t, item.LineTotal().Equal(decimal.NewFromFloat(259.80)))
	assert.Len(t, o.Items, 1)

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := o.AddItem(productID, "Headphones", 0, price)
		require.Error(t, err)
	})

	t.Run("rejects nil product", func(t *testing.T) {
		_, err := o.AddItem(uuid.Nil, "Headphones", 1, price)
		require.Error(t, err)
	})
}

func TestOrderItemsTotal(t *testing.T) {
	o := mustOrder(t)
	_, err := o.AddItem(uuid.New(), "A", 2, valueobject.NewMoneyILS(decimal.NewFromInt(100)))
	require.NoError(t, err)
	_, err = o.AddItem(uuid.New(), "B", 1, valueobject.NewMoneyILS(decimal.NewFromFloat(59.80)))
	require.NoError(t, err)

	assert.True(t, o.ItemsTotal().Equal(decimal.NewFromFloat(259.80)))
	// the stored total includes the delivery fee and is never recomputed
	assert.True(t, o.TotalAmount.Equal(o.ItemsTotal().Add(DeliveryFee)))
}

func TestOrderUpdateStatus(t *testing.T) {
	o := mustOrder(t)

	t.Run("accepts every valid status from every state", func(t *testing.T) {
		all := []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
		for _, from := range all {
			require.NoError(t, o.UpdateStatus(from))
			for _, to := range all {
				require.NoError(t, o.UpdateStatus(to))
				assert.Equal(t, to, o.Status)
			}
		}
	})

	t.Run("cancelled order can be revived", func(t *testing.T) {
		require.NoError(t, o.UpdateStatus(StatusCancelled))
		require.NoError(t, o.UpdateStatus(StatusPending))
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := o.UpdateStatus(Status("refunded"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown order status")
	})
}

func TestOrderMarkTelegramSent(t *testing.T) {
	o := mustOrder(t)
	require.False(t, o.TelegramSent)

	o.MarkTelegramSent()
	assert.True(t, o.TelegramSent)
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("PENDING").IsValid())
}

func mustOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("Dana Levi", "050-1234567", "Tel Aviv", "Herzl 10", "",
		valueobject.NewMoneyILS(decimal.NewFromFloat(284.80)))
	require.NoError(t, err)
	return o
}
