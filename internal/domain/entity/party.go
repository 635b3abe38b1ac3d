package entity

// Party representa una parte nombrada del documento: consignatario/comprador
// o, con los campos básicos, el remitente (shipper).
type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string

	// Campos específicos de exportación, opcionales.
	PlantAddress string // dirección de planta; si existe, suprime Address en el render
	TaxPIN       string // PIN/identificación fiscal del comprador
	Other        string // texto libre adicional
}

// Empty indica si la parte no aporta ningún dato.
func (p Party) Empty() bool {
	return p.Name == "" && p.Address == "" && p.Phone == "" &&
		p.Email == "" && p.PlantAddress == "" && p.TaxPIN == "" && p.Other == ""
}
