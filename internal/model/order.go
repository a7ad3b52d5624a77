package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	StatusUnpaid   OrderStatus = "Belum Dibayar"
	StatusPaid     OrderStatus = "Sudah Dibayar"
	StatusReturned OrderStatus = "Return"
)

type Order struct {
	BaseModel
	Date        datatypes.Date  `gorm:"not null;index" json:"date"`
	ProductCode string          `gorm:"type:varchar(255);not null;index" json:"productCode" validate:"required"`
	Product     *Product        `gorm:"foreignKey:ProductCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product,omitempty" validate:"-"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity" validate:"gte=1"`
	Discount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"discount" validate:"gte=0"`
	Admin       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"admin" validate:"gte=0"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'Belum Dibayar'" json:"status" validate:"order_status"`
}

// Day returns the order date as a time.Time at midnight UTC.
func (o *Order) Day() time.Time {
	t := time.Time(o.Date)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
