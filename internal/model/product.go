package model

import (
	"regexp"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	Code       string          `gorm:"type:varchar(255);primaryKey" json:"code"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Color      string          `gorm:"type:varchar(100);not null" json:"color" validate:"required"`
	PriceModal decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"priceModal" validate:"gte=0"`
	PriceJual  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"priceJual" validate:"gte=0"`
	Link       *string         `gorm:"type:text" json:"link"`
	Audit
}

var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// GenerateProductCode derives the product key: "<name>_<color>", lowercased,
// with each run of whitespace collapsed into a single underscore.
// "Kaos Polos", "Merah" -> "kaos_polos_merah".
func GenerateProductCode(name, color string) string {
	code := cases.Lower(language.Und).String(name + "_" + color)
	return whitespaceRun.ReplaceAllString(code, "_")
}
