package billing

import "github.com/shopspring/decimal"

// Reglas de formato numérico del documento (reproducibles bit a bit):
// cantidades sin decimales, montos con exactamente dos decimales y
// separador de miles con coma.

// FormatQuantity renderiza una cantidad sin decimales ("2", "40").
func FormatQuantity(d decimal.Decimal) string {
	return d.StringFixed(0)
}

// FormatMoney renderiza un monto con dos decimales y separador de miles.
// Ej: 1234.5 → "1,234.50"; -20000 → "-20,000.00"
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart := s[:len(s)-3] // todo menos ".dd"
	out := groupThousands(intPart) + s[len(s)-3:]
	if neg {
		return "-" + out
	}
	return out
}

// FormatDiscount renderiza el descuento siempre con signo menos, sin
// importar el signo almacenado (se guarda como magnitud).
func FormatDiscount(d decimal.Decimal) string {
	return "-" + FormatMoney(d.Abs())
}

// groupThousands inserta comas de miles en un string de dígitos.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
