package entity

// PaymentInfo contiene los datos bancarios del pie de página.
type PaymentInfo struct {
	Bank    string
	Account string
	SWIFT   string
}

// Present indica si hay información de pago que mostrar: basta con que
// exista banco o cuenta (el SWIFT solo acompaña).
func (p PaymentInfo) Present() bool {
	return p.Bank != "" || p.Account != ""
}
