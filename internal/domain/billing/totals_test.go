package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factura-export/internal/domain/billing"
	"github.com/jhoicas/factura-export/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// TestCalculate cubre el escenario de referencia del documento:
// 1 ítem de 2 × 10.00 con 10% de impuesto y 1.00 de descuento debe producir
// subtotal 20.00, impuesto 2.00 y gran total 21.00.
// ──────────────────────────────────────────────────────────────────────────────
func TestCalculate(t *testing.T) {
	items := []entity.LineItem{
		{Description: "Widget", Quantity: d("2"), UnitPrice: d("10.00")},
	}

	totals := billing.Calculate(items, d("10"), d("1.00"))

	assert.Equal(t, "20.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "2", totals.TotalQuantity.StringFixed(0))
	assert.Equal(t, "2.00", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "21.00", totals.GrandTotal.StringFixed(2))
	assert.True(t, totals.HasSummary())
}

func TestCalculateEmptyItems(t *testing.T) {
	totals := billing.Calculate(nil, decimal.Zero, decimal.Zero)

	assert.Equal(t, "0.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", totals.GrandTotal.StringFixed(2))
	assert.False(t, totals.HasSummary(), "sin impuesto ni descuento no hay bloque resumen")
}

func TestCalculateSubtotalEqualsSumOfItemAmounts(t *testing.T) {
	items := []entity.LineItem{
		{Description: "A", Quantity: d("40"), UnitPrice: d("500"), Amount: d("20000")},
		{Description: "B", Quantity: d("12"), UnitPrice: d("1000")},
		{Description: "C", Quantity: d("8"), UnitPrice: d("800"), Amount: d("6400")},
	}

	totals := billing.Calculate(items, decimal.Zero, decimal.Zero)

	var want decimal.Decimal
	for _, it := range items {
		want = want.Add(billing.ItemAmount(it))
	}
	assert.Equal(t, want.StringFixed(2), totals.Subtotal.StringFixed(2))
	assert.Equal(t, "38,400.00", billing.FormatMoney(totals.Subtotal))
	assert.Equal(t, "60", totals.TotalQuantity.StringFixed(0))
}

// ItemAmount: el monto explícito manda, pero un monto cero cuenta como
// ausente y cae al producto cantidad × precio.
func TestItemAmount(t *testing.T) {
	explicit := entity.LineItem{Quantity: d("2"), UnitPrice: d("10"), Amount: d("30")}
	assert.Equal(t, "30.00", billing.ItemAmount(explicit).StringFixed(2))

	computed := entity.LineItem{Quantity: d("2"), UnitPrice: d("10")}
	assert.Equal(t, "20.00", billing.ItemAmount(computed).StringFixed(2))

	empty := entity.LineItem{}
	assert.Equal(t, "0.00", billing.ItemAmount(empty).StringFixed(2))
}

func TestCalculateDiscountIsMagnitude(t *testing.T) {
	items := []entity.LineItem{{Description: "X", Quantity: d("1"), UnitPrice: d("100")}}

	totals := billing.Calculate(items, decimal.Zero, d("-5"))

	assert.Equal(t, "5.00", totals.Discount.StringFixed(2))
	assert.Equal(t, "95.00", totals.GrandTotal.StringFixed(2))
	assert.True(t, totals.HasSummary())
}

func TestCalculateNegativeTaxRateProducesNoTax(t *testing.T) {
	items := []entity.LineItem{{Description: "X", Quantity: d("1"), UnitPrice: d("100")}}

	totals := billing.Calculate(items, d("-10"), decimal.Zero)

	assert.Equal(t, "0.00", totals.TaxAmount.StringFixed(2))
	// La tasa no es cero: el bloque resumen sí se emite.
	assert.True(t, totals.HasSummary())
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999", "999.00"},
		{"1234.5", "1,234.50"},
		{"25000", "25,000.00"},
		{"1000000", "1,000,000.00"},
		{"-20000", "-20,000.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, billing.FormatMoney(d(tc.in)), "entrada %s", tc.in)
	}
}

func TestFormatDiscountAlwaysNegative(t *testing.T) {
	assert.Equal(t, "-1.00", billing.FormatDiscount(d("1")))
	assert.Equal(t, "-3.00", billing.FormatDiscount(d("-3")))
	assert.Equal(t, "-0.00", billing.FormatDiscount(d("0")))
}

func TestFormatQuantity(t *testing.T) {
	require.Equal(t, "40", billing.FormatQuantity(d("40")))
	require.Equal(t, "0", billing.FormatQuantity(decimal.Zero))
}
