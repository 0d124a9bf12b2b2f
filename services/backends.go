package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tekrabyte/waui-sub001/entity"
)

// The interfaces below are the backend as seen by a terminal session.
// repository/ satisfies all of them over gorm.

type CatalogBackend interface {
	GetAllProducts(ctx context.Context) ([]entity.Product, error)
	GetAllCategories(ctx context.Context) ([]entity.Category, error)
	GetAllCustomers(ctx context.Context) ([]entity.Customer, error)
}

type TransactionBackend interface {
	Create(ctx context.Context, tx *entity.Transaction) (string, error)
}

type PaymentMethodUpdate struct {
	Name     string
	Category string
	Enabled  bool
	Fee      decimal.Decimal
	FeeType  string
	Config   map[string]string
}

type CustomMethodIn struct {
	Name     string           `json:"name"`
	Category MethodCategory   `json:"category"`
	Fee      *decimal.Decimal `json:"fee"`
	FeeType  FeeType          `json:"feeType"`
}

type PaymentMethodBackend interface {
	GetAll(ctx context.Context) ([]entity.PaymentMethod, error)
	Update(ctx context.Context, id string, in PaymentMethodUpdate) error
	CreateCustom(ctx context.Context, rec *entity.PaymentMethod) (string, error)
	DeleteCustom(ctx context.Context, id string) error
}

type TableFields struct {
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Area        string `json:"area"`
}

type TableBackend interface {
	GetAll(ctx context.Context) ([]entity.Table, error)
	Create(ctx context.Context, t *entity.Table) (string, error)
	Update(ctx context.Context, id string, f TableFields) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entity.TableStatus) error
}

// KeyValueStore is the durable local cache. Get reports ok=false on a miss.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
