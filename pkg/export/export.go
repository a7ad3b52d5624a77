// Package export renders order reports as xlsx workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"go-order-tracker/internal/report"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Orders"

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var Headers = []interface{}{
	"Tanggal", "Code Produk", "Nama Produk", "Warna", "Quantity",
	"Harga Modal", "Harga Jual", "Diskon", "Admin",
	"Total Bayar ke Supplier", "Keuntungan", "Status",
}

// FileName is the default download name for an export made on t.
func FileName(t time.Time) string {
	return "orders_" + t.Format("2006-01-02") + ".xlsx"
}

// OrdersWorkbook writes one row per summary line under a fixed header row.
func OrdersWorkbook(summary report.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &Headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, line := range summary.Lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, rowOf(line)); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "L", 16); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func rowOf(line report.Line) *[]interface{} {
	var code, name, color string
	var modal, jual decimal.Decimal
	if p := line.Product; p != nil {
		code, name, color = p.Code, p.Name, p.Color
		modal, jual = p.PriceModal, p.PriceJual
	} else {
		code = line.ProductCode
	}

	return &[]interface{}{
		line.Day().Format("02/01/2006"),
		code,
		name,
		color,
		line.Quantity,
		number(modal),
		number(jual),
		number(line.Discount),
		number(line.Admin),
		number(line.TotalPay),
		number(line.Profit),
		string(line.Status),
	}
}

func number(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
