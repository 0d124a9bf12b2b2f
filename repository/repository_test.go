package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/pkg/logger"
	"github.com/tekrabyte/waui-sub001/services"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.Product{}, &entity.Customer{},
		&entity.Transaction{}, &entity.TransactionItem{},
		&entity.PaymentMethod{}, &entity.Table{}, &entity.CacheEntry{},
	))
	return db
}

func TestCatalogRepository_GetAll(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&[]entity.Category{{ID: "c2", Name: "Food"}, {ID: "c1", Name: "Drinks"}}).Error)
	require.NoError(t, db.Create(&entity.Product{ID: "p1", Name: "Tea", Price: decimal.RequireFromString("8000.5"), Category: "c1", Available: true}).Error)
	require.NoError(t, db.Create(&entity.Customer{ID: "cus-1", Name: "Budi"}).Error)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	cats, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Drinks", cats[0].Name)

	products, err := repo.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("8000.5")))

	customers, err := repo.GetAllCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestTransactionRepository_CreateWithItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)

	id, err := repo.Create(context.Background(), &entity.Transaction{
		Total:  decimal.NewFromInt(40),
		Fee:    decimal.Zero,
		Status: entity.TransactionStatusCompleted,
		Items: []entity.TransactionItem{
			{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(10)},
			{ProductID: "p2", Quantity: 1, Price: decimal.NewFromInt(20)},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(40)))
	assert.Len(t, got.Items, 2)
}

func TestPaymentMethodRepository_UpdateUpserts(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentMethodRepository(db)
	ctx := context.Background()

	err := repo.Update(ctx, "qris", services.PaymentMethodUpdate{
		Name: "QRIS", Category: "online", Enabled: true,
		Fee: decimal.RequireFromString("0.7"), FeeType: "percentage",
		Config: map[string]string{"qrImage": "data:image/png;base64,AAA"},
	})
	require.NoError(t, err)

	err = repo.Update(ctx, "qris", services.PaymentMethodUpdate{
		Name: "QRIS", Category: "online", Enabled: false,
		Fee: decimal.NewFromInt(1), FeeType: "percentage",
	})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "qris", all[0].ID)
	assert.True(t, all[0].IsDefault)
	assert.False(t, all[0].Enabled)
	assert.True(t, all[0].Fee.Equal(decimal.NewFromInt(1)))
}

func TestPaymentMethodRepository_CustomLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentMethodRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Update(ctx, "cash", services.PaymentMethodUpdate{Name: "Cash", Category: "offline", Enabled: true, FeeType: "flat"}))

	id, err := repo.CreateCustom(ctx, &entity.PaymentMethod{Name: "Voucher", Category: "offline", Enabled: true, FeeType: "flat", Fee: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "cash", all[0].ID, "defaults first")
	assert.False(t, all[1].IsDefault)

	assert.ErrorIs(t, repo.DeleteCustom(ctx, "cash"), gorm.ErrRecordNotFound)
	require.NoError(t, repo.DeleteCustom(ctx, id))
	assert.ErrorIs(t, repo.DeleteCustom(ctx, id), gorm.ErrRecordNotFound)
}

func TestTableRepository_CRUDAndStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewTableRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &entity.Table{TableNumber: "A1", Capacity: 4, Area: "Indoor"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, id, entity.TableReserved))
	require.NoError(t, repo.Update(ctx, id, services.TableFields{TableNumber: "A1", Capacity: 6, Area: "Terrace"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.TableReserved, all[0].Status)
	assert.Equal(t, 6, all[0].Capacity)
	assert.Equal(t, "Terrace", all[0].Area)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", entity.TableOccupied), gorm.ErrRecordNotFound)
	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), gorm.ErrRecordNotFound)
}

func TestCacheRepository_GetSet(t *testing.T) {
	db := openTestDB(t)
	repo := NewCacheRepository(db)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "k", "v1"))
	require.NoError(t, repo.Set(ctx, "k", "v2"))

	v, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

// The registry running on real repositories: cache is the fallback once the
// backend goes away.
func TestRegistryOverRepositories(t *testing.T) {
	db := openTestDB(t)
	methods := NewPaymentMethodRepository(db)
	cache := NewCacheRepository(db)
	ctx := context.Background()

	r := services.NewPaymentMethodRegistry(methods, cache, logger.Discard())
	assert.Equal(t, services.SourceDefaults, r.Load(ctx))

	_, out, err := r.Toggle(ctx, "gopay")
	require.NoError(t, err)
	assert.False(t, out.Degraded)

	next := services.NewPaymentMethodRegistry(methods, cache, logger.Discard())
	assert.Equal(t, services.SourceBackend, next.Load(ctx))
	gopay, ok := next.Method("gopay")
	require.True(t, ok)
	assert.True(t, gopay.Enabled)
}

func TestRegistryOverRepositories_CustomMethodKeepsDefaults(t *testing.T) {
	db := openTestDB(t)
	methods := NewPaymentMethodRepository(db)
	cache := NewCacheRepository(db)
	ctx := context.Background()

	r := services.NewPaymentMethodRegistry(methods, cache, logger.Discard())
	require.Equal(t, services.SourceDefaults, r.Load(ctx))
	fee := decimal.NewFromInt(1000)
	custom, out, err := r.CreateCustom(ctx, services.CustomMethodIn{Name: "Voucher", Fee: &fee, FeeType: services.FeeFlat})
	require.NoError(t, err)
	require.False(t, out.Degraded)

	next := services.NewPaymentMethodRegistry(methods, cache, logger.Discard())
	assert.Equal(t, services.SourceBackend, next.Load(ctx))
	assert.Len(t, next.Methods(), len(services.DefaultMethods())+1)

	cash, ok := next.Method("cash")
	require.True(t, ok)
	assert.True(t, cash.IsDefault)
	assert.True(t, cash.Enabled)
	_, ok = next.Method(custom.ID)
	assert.True(t, ok)
}
