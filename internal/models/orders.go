package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentCashOnDelivery is the only payment method currently honored.
// Whatever the form submits resolves to this value.
const PaymentCashOnDelivery = "Cash on Delivery"

const StatusPending = "Pending"

// OrderedBook is a frozen copy of a cart item embedded in an order, so
// historical orders stay stable when a book is later edited or deleted.
type OrderedBook struct {
	BookID   primitive.ObjectID `bson:"book_id"`
	Title    string             `bson:"title"`
	Author   string             `bson:"author"`
	Price    float64            `bson:"price"`
	Quantity int                `bson:"quantity"`
}

// Order is immutable once persisted; no update path exists.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName  string             `bson:"customer_name"`
	Address       string             `bson:"address"`
	City          string             `bson:"city"`
	PostalCode    string             `bson:"postal_code"`
	Country       string             `bson:"country"`
	Books         []OrderedBook      `bson:"books"`
	PaymentMethod string             `bson:"payment_method"`
	TotalAmount   float64            `bson:"total_amount"`
	OrderDate     time.Time          `bson:"order_date"`
	Status        string             `bson:"status"`
}

type ShippingDetails struct {
	CustomerName string
	Address      string
	City         string
	PostalCode   string
	Country      string
}

// AssembleOrder converts the session cart into an order ready to
// persist. It returns ErrEmptyCart when there is nothing to order. The
// cart itself is not touched; clearing it is the caller's second phase,
// taken only after the order write succeeds.
func AssembleOrder(cart Cart, ship ShippingDetails) (*Order, error) {
	if cart.Empty() {
		return nil, ErrEmptyCart
	}

	books := make([]OrderedBook, 0, len(cart.Items))
	var total float64
	for _, item := range cart.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		books = append(books, OrderedBook{
			BookID:   item.BookID,
			Title:    item.Title,
			Author:   item.Author,
			Price:    item.Price,
			Quantity: qty,
		})
		total += item.Price * float64(qty)
	}

	return &Order{
		CustomerName:  ship.CustomerName,
		Address:       ship.Address,
		City:          ship.City,
		PostalCode:    ship.PostalCode,
		Country:       ship.Country,
		Books:         books,
		PaymentMethod: PaymentCashOnDelivery,
		TotalAmount:   total,
		OrderDate:     time.Now(),
		Status:        StatusPending,
	}, nil
}

type OrderModelInterface interface {
	Insert(ctx context.Context, o *Order) (primitive.ObjectID, error)
	All(ctx context.Context) ([]*Order, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type OrderModel struct {
	C *mongo.Collection
}

func (m *OrderModel) Insert(ctx context.Context, o *Order) (primitive.ObjectID, error) {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	_, err := m.C.InsertOne(ctx, o)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return o.ID, nil
}

func (m *OrderModel) All(ctx context.Context) ([]*Order, error) {
	var orders []*Order
	opts := options.Find().SetSort(bson.D{{Key: "order_date", Value: -1}})
	cur, err := m.C.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &orders)
	return orders, err
}

func (m *OrderModel) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}},
	}
	cur, err := m.C.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var results []bson.M
	if err = cur.All(ctx, &results); err != nil || len(results) == 0 {
		return 0, err
	}
	switch v := results[0]["total"].(type) {
	case float64:
		return v, nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, nil
	}
}
