package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProductCode(t *testing.T) {
	tests := []struct {
		name, color, want string
	}{
		{"Kaos Polos", "Merah", "kaos_polos_merah"},
		{"Kemeja", "Biru Muda", "kemeja_biru_muda"},
		{"Topi  Baseball", "Hitam", "topi_baseball_hitam"},
		{"Celana\tPanjang", "Abu\nAbu", "celana_panjang_abu_abu"},
		{"JAKET", "HIJAU", "jaket_hijau"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateProductCode(tt.name, tt.color))
		})
	}
}

func TestGenerateProductCode_Deterministic(t *testing.T) {
	assert.Equal(t, GenerateProductCode("Kaos Polos", "Merah"), GenerateProductCode("Kaos Polos", "Merah"))
}

func TestProduct_PricesMarshalAsNumbers(t *testing.T) {
	p := Product{Code: "kaos_polos_merah", PriceModal: decimal.NewFromInt(100000), PriceJual: decimal.RequireFromString("150000.5")}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, float64(100000), out["priceModal"])
	assert.Equal(t, 150000.5, out["priceJual"])
}

func TestOperator_Password(t *testing.T) {
	var op Operator
	assert.False(t, op.CheckPassword(""))

	require.NoError(t, op.SetPassword("rahasia"))
	assert.NotEqual(t, "rahasia", op.PasswordHash)
	assert.True(t, op.CheckPassword("rahasia"))
	assert.False(t, op.CheckPassword("salah"))
}
