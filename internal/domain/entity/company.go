package entity

// Company representa al emisor de la factura comercial.
// Todos los campos son texto libre y pueden estar vacíos; el composer
// omite las líneas vacías al renderizar.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
}
