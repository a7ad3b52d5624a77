package export

import (
	"testing"
	"time"

	"go-order-tracker/internal/model"
	"go-order-tracker/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "orders_2024-03-07.xlsx", FileName(time.Date(2024, 3, 7, 23, 0, 0, 0, time.UTC)))
}

func TestOrdersWorkbook(t *testing.T) {
	product := &model.Product{
		Code:       "kaos_polos_merah",
		Name:       "Kaos Polos",
		Color:      "Merah",
		PriceModal: decimal.NewFromInt(100000),
		PriceJual:  decimal.NewFromInt(150000),
	}
	orders := []model.Order{{
		Date:        datatypes.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		ProductCode: product.Code,
		Product:     product,
		Quantity:    3,
		Discount:    decimal.NewFromInt(5000),
		Admin:       decimal.NewFromInt(2000),
		Status:      model.StatusPaid,
	}}

	buf, err := OrdersWorkbook(report.Aggregate(orders, report.DateRange{}))
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Tanggal", rows[0][0])
	assert.Equal(t, "Total Bayar ke Supplier", rows[0][9])
	assert.Equal(t, "Status", rows[0][11])

	assert.Equal(t, []string{
		"15/01/2024", "kaos_polos_merah", "Kaos Polos", "Merah", "3",
		"100000", "150000", "5000", "2000", "300000", "143000", "Sudah Dibayar",
	}, rows[1])
}

func TestOrdersWorkbook_Empty(t *testing.T) {
	buf, err := OrdersWorkbook(report.Summary{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
