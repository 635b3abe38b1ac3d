package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de mercancía facturada.
//
// Description es el único campo obligatorio: una línea sin descripción se
// descarta completa (no se renderiza ni suma en los totales). Amount puede
// venir explícito; si es cero se calcula Quantity×UnitPrice.
type LineItem struct {
	ProductName   string // si falta, el render usa Description
	ProductNumber string
	ItemNumber    string
	HSCode        string
	Description   string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Amount        decimal.Decimal
}
