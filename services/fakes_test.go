package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tekrabyte/waui-sub001/entity"
)

var errBackendDown = errors.New("backend unavailable")

type memStore struct {
	mu   sync.Mutex
	data map[string]string
	fail bool
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return "", false, errors.New("cache down")
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("cache down")
	}
	s.data[key] = value
	return nil
}

type fakePaymentBackend struct {
	mu      sync.Mutex
	down    bool
	records []entity.PaymentMethod
	updates map[string]PaymentMethodUpdate
	deleted []string
	nextID  int
}

func newFakePaymentBackend(records ...entity.PaymentMethod) *fakePaymentBackend {
	return &fakePaymentBackend{records: records, updates: map[string]PaymentMethodUpdate{}}
}

func (b *fakePaymentBackend) GetAll(context.Context) ([]entity.PaymentMethod, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return nil, errBackendDown
	}
	return append([]entity.PaymentMethod(nil), b.records...), nil
}

func (b *fakePaymentBackend) Update(_ context.Context, id string, in PaymentMethodUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return errBackendDown
	}
	b.updates[id] = in
	return nil
}

func (b *fakePaymentBackend) CreateCustom(_ context.Context, rec *entity.PaymentMethod) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return "", errBackendDown
	}
	b.nextID++
	rec.ID = fmt.Sprintf("pm-%d", b.nextID)
	b.records = append(b.records, *rec)
	return rec.ID, nil
}

func (b *fakePaymentBackend) DeleteCustom(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return errBackendDown
	}
	b.deleted = append(b.deleted, id)
	return nil
}

type fakeCatalogBackend struct {
	products   []entity.Product
	categories []entity.Category
	customers  []entity.Customer
	down       bool
}

func (b *fakeCatalogBackend) GetAllProducts(context.Context) ([]entity.Product, error) {
	if b.down {
		return nil, errBackendDown
	}
	return b.products, nil
}

func (b *fakeCatalogBackend) GetAllCategories(context.Context) ([]entity.Category, error) {
	if b.down {
		return nil, errBackendDown
	}
	return b.categories, nil
}

func (b *fakeCatalogBackend) GetAllCustomers(context.Context) ([]entity.Customer, error) {
	if b.down {
		return nil, errBackendDown
	}
	return b.customers, nil
}

type fakeTransactionBackend struct {
	down     bool
	created  []entity.Transaction
	onCreate func()
}

func (b *fakeTransactionBackend) Create(_ context.Context, tx *entity.Transaction) (string, error) {
	if b.onCreate != nil {
		b.onCreate()
	}
	if b.down {
		return "", errBackendDown
	}
	id := fmt.Sprintf("trx-%d", len(b.created)+1)
	tx.ID = id
	b.created = append(b.created, *tx)
	return id, nil
}

type fakeTableBackend struct {
	mu       sync.Mutex
	down     bool
	tables   []entity.Table
	statuses map[string]entity.TableStatus
	nextID   int
}

func newFakeTableBackend(tables ...entity.Table) *fakeTableBackend {
	return &fakeTableBackend{tables: tables, statuses: map[string]entity.TableStatus{}}
}

func (b *fakeTableBackend) GetAll(context.Context) ([]entity.Table, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return nil, errBackendDown
	}
	return append([]entity.Table(nil), b.tables...), nil
}

func (b *fakeTableBackend) Create(_ context.Context, t *entity.Table) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return "", errBackendDown
	}
	b.nextID++
	t.ID = fmt.Sprintf("t-%d", b.nextID)
	b.tables = append(b.tables, *t)
	return t.ID, nil
}

func (b *fakeTableBackend) Update(context.Context, string, TableFields) error {
	if b.down {
		return errBackendDown
	}
	return nil
}

func (b *fakeTableBackend) Delete(context.Context, string) error {
	if b.down {
		return errBackendDown
	}
	return nil
}

func (b *fakeTableBackend) UpdateStatus(_ context.Context, id string, status entity.TableStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return errBackendDown
	}
	b.statuses[id] = status
	return nil
}
