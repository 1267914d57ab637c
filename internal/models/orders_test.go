package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssembleOrder(t *testing.T) {
	ship := ShippingDetails{
		CustomerName: "Alice",
		Address:      "1 Main St",
		City:         "Lahore",
		PostalCode:   "54000",
		Country:      "Pakistan",
	}

	t.Run("computes total over price times quantity", func(t *testing.T) {
		cart := Cart{Items: []CartItem{
			{BookID: primitive.NewObjectID(), Title: "A", Author: "X", Price: 10, Quantity: 1},
			{BookID: primitive.NewObjectID(), Title: "B", Author: "Y", Price: 5, Quantity: 2},
		}}

		order, err := AssembleOrder(cart, ship)
		require.NoError(t, err)

		assert.Equal(t, 20.0, order.TotalAmount)
		require.Len(t, order.Books, 2)
		assert.Equal(t, "Alice", order.CustomerName)
		assert.Equal(t, PaymentCashOnDelivery, order.PaymentMethod)
		assert.Equal(t, StatusPending, order.Status)
		assert.False(t, order.OrderDate.IsZero())
	})

	t.Run("empty cart yields ErrEmptyCart and no order", func(t *testing.T) {
		order, err := AssembleOrder(Cart{}, ship)
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Nil(t, order)
	})

	t.Run("unset quantity counts as one", func(t *testing.T) {
		cart := Cart{Items: []CartItem{
			{BookID: primitive.NewObjectID(), Title: "A", Author: "X", Price: 7},
		}}

		order, err := AssembleOrder(cart, ship)
		require.NoError(t, err)

		assert.Equal(t, 7.0, order.TotalAmount)
		assert.Equal(t, 1, order.Books[0].Quantity)
	})

	t.Run("embeds frozen copies of the cart items", func(t *testing.T) {
		id := primitive.NewObjectID()
		cart := Cart{Items: []CartItem{
			{BookID: id, Title: "A", Author: "X", Price: 10, Quantity: 1},
		}}

		order, err := AssembleOrder(cart, ship)
		require.NoError(t, err)

		// Mutating the cart afterwards must not reach the order.
		cart.Items[0].Price = 999
		cart.Items[0].Title = "changed"

		got := order.Books[0]
		assert.Equal(t, id, got.BookID)
		assert.Equal(t, "A", got.Title)
		assert.Equal(t, "X", got.Author)
		assert.Equal(t, 10.0, got.Price)
	})
}
