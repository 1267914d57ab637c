package mocks

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

type OrderModel struct {
	mu       sync.Mutex
	Inserted []*models.Order

	// FailInsert makes the next Insert calls fail, for exercising the
	// checkout path where persistence fails and the cart must survive.
	FailInsert bool

	// FailRevenue makes TotalRevenue fail, for exercising the dashboard
	// path where the aggregation errors.
	FailRevenue bool
}

func NewOrderModel() *OrderModel {
	return &OrderModel{}
}

func (m *OrderModel) Insert(ctx context.Context, o *models.Order) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailInsert {
		return primitive.NilObjectID, errors.New("mocks: insert failed")
	}
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	m.Inserted = append(m.Inserted, o)
	return o.ID, nil
}

func (m *OrderModel) All(ctx context.Context) ([]*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.Order(nil), m.Inserted...), nil
}

func (m *OrderModel) TotalRevenue(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRevenue {
		return 0, errors.New("mocks: aggregation failed")
	}
	var total float64
	for _, o := range m.Inserted {
		total += o.TotalAmount
	}
	return total, nil
}
