// Package billing contiene la aritmética pura de la factura (servicio de
// dominio): importe por línea, subtotal, cantidad total, impuesto, descuento
// y gran total. No conoce el layout ni el PDF.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/factura-export/internal/domain/entity"
)

// Totals agrupa los agregados derivados de la lista de ítems.
// No se persiste: se calcula una vez por documento y se descarta.
type Totals struct {
	Subtotal      decimal.Decimal // Σ importe por línea
	TotalQuantity decimal.Decimal // Σ cantidad
	TaxRate       decimal.Decimal // porcentaje, tal como llegó
	TaxAmount     decimal.Decimal // Subtotal × TaxRate/100 (0 si TaxRate ≤ 0)
	Discount      decimal.Decimal // magnitud no negativa a restar
	GrandTotal    decimal.Decimal // Subtotal − Discount + TaxAmount
}

var hundred = decimal.NewFromInt(100)

// ItemAmount devuelve el importe de una línea: el monto explícito si no es
// cero, o Quantity×UnitPrice en su defecto. Un monto explícito de cero se
// trata como ausente, igual que un campo en blanco en el formulario.
func ItemAmount(it entity.LineItem) decimal.Decimal {
	if !it.Amount.IsZero() {
		return it.Amount
	}
	return it.Quantity.Mul(it.UnitPrice)
}

// Calculate computa los agregados del documento.
//
// El descuento se normaliza a magnitud (valor absoluto): siempre se resta y
// siempre se imprime con signo menos. Un TaxRate ≤ 0 no genera impuesto.
func Calculate(items []entity.LineItem, taxRate, discount decimal.Decimal) Totals {
	t := Totals{
		TaxRate:  taxRate,
		Discount: discount.Abs(),
	}
	for _, it := range items {
		t.Subtotal = t.Subtotal.Add(ItemAmount(it))
		t.TotalQuantity = t.TotalQuantity.Add(it.Quantity)
	}
	if taxRate.GreaterThan(decimal.Zero) {
		t.TaxAmount = t.Subtotal.Mul(taxRate).Div(hundred)
	}
	t.GrandTotal = t.Subtotal.Sub(t.Discount).Add(t.TaxAmount)
	return t
}

// HasSummary indica si debe emitirse el bloque resumen de totales:
// solo cuando hay impuesto o descuento distintos de cero.
func (t Totals) HasSummary() bool {
	return !t.TaxRate.IsZero() || !t.Discount.IsZero()
}
