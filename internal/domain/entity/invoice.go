package entity

// InvoiceHeader es la cabecera del documento.
//
// Las fechas se manejan como texto ya formateado (YYYY-MM-DD): el composer
// las imprime tal cual llegan del normalizador, que es quien aplica los
// valores por defecto (hoy, y vencimiento a +30 días).
type InvoiceHeader struct {
	Number   string // único por documento; el normalizador lo genera si falta
	Date     string
	DueDate  string
	PONumber string // número de orden de compra, opcional
}
