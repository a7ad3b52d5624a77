package repository

import (
	"context"
	"testing"
	"time"

	"go-order-tracker/internal/model"
	"go-order-tracker/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seedProduct(t *testing.T, repo ProductRepository, name, color string) *model.Product {
	t.Helper()
	p := &model.Product{
		Code:       model.GenerateProductCode(name, color),
		Name:       name,
		Color:      color,
		PriceModal: decimal.NewFromInt(100000),
		PriceJual:  decimal.NewFromInt(150000),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedOrder(t *testing.T, repo OrderRepository, code, date string) *model.Order {
	t.Helper()
	o := &model.Order{
		Date:        datatypes.Date(day(date)),
		ProductCode: code,
		Quantity:    2,
		Discount:    decimal.NewFromInt(1000),
		Status:      model.StatusUnpaid,
	}
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

func TestProductRepo_CreateAndFind(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	seedProduct(t, repo, "Kaos Polos", "Merah")
	seedProduct(t, repo, "Celana", "Hitam")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Celana", all[0].Name)

	p, err := repo.FindByCode(ctx, "kaos_polos_merah")
	require.NoError(t, err)
	assert.True(t, p.PriceJual.Equal(decimal.NewFromInt(150000)))

	_, err = repo.FindByCode(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepo_DuplicateCodeRejected(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)

	seedProduct(t, repo, "Kaos Polos", "Merah")
	err := repo.Create(context.Background(), &model.Product{Code: "kaos_polos_merah", Name: "Kaos Polos", Color: "Merah"})
	assert.Error(t, err)
}

func TestProductRepo_Delete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)
	seedProduct(t, repo, "Kaos Polos", "Merah")

	require.NoError(t, repo.Delete(db, "kaos_polos_merah"))
	assert.ErrorIs(t, repo.Delete(db, "kaos_polos_merah"), gorm.ErrRecordNotFound)
}

func TestOrderRepo_FindAllPreloadsProduct(t *testing.T) {
	db := testutil.NewDB(t)
	products := NewProductRepo(db)
	orders := NewOrderRepo(db)
	p := seedProduct(t, products, "Kaos Polos", "Merah")
	created := seedOrder(t, orders, p.Code, "2024-01-10")

	all, err := orders.FindAll(context.Background(), OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	require.NotNil(t, all[0].Product)
	assert.Equal(t, "Kaos Polos", all[0].Product.Name)
	assert.True(t, all[0].Discount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "2024-01-10", all[0].Day().Format("2006-01-02"))
}

func TestOrderRepo_FindAllFiltersByDate(t *testing.T) {
	db := testutil.NewDB(t)
	products := NewProductRepo(db)
	orders := NewOrderRepo(db)
	p := seedProduct(t, products, "Kaos Polos", "Merah")
	for _, d := range []string{"2024-01-09", "2024-01-10", "2024-01-20", "2024-01-21"} {
		seedOrder(t, orders, p.Code, d)
	}

	from, until := day("2024-01-10"), day("2024-01-21")
	got, err := orders.FindAll(context.Background(), OrderFilter{From: &from, Until: &until})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-20", got[0].Day().Format("2006-01-02"))
	assert.Equal(t, "2024-01-10", got[1].Day().Format("2006-01-02"))
}

func TestOrderRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	products := NewProductRepo(db)
	orders := NewOrderRepo(db)
	ctx := context.Background()
	p := seedProduct(t, products, "Kaos Polos", "Merah")
	o := seedOrder(t, orders, p.Code, "2024-01-10")

	o.Status = model.StatusPaid
	require.NoError(t, orders.Update(ctx, o))

	got, err := orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, got.Status)

	require.NoError(t, orders.Delete(ctx, o.ID))
	assert.ErrorIs(t, orders.Delete(ctx, o.ID), gorm.ErrRecordNotFound)

	_, err = orders.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepo_CountByProductCode(t *testing.T) {
	db := testutil.NewDB(t)
	products := NewProductRepo(db)
	orders := NewOrderRepo(db)
	p := seedProduct(t, products, "Kaos Polos", "Merah")
	other := seedProduct(t, products, "Celana", "Hitam")
	seedOrder(t, orders, p.Code, "2024-01-10")
	seedOrder(t, orders, p.Code, "2024-01-11")

	n, err := orders.CountByProductCode(db, p.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = orders.CountByProductCode(db, other.Code)
	require.NoError(t, err)
	assert.Zero(t, n)
}
