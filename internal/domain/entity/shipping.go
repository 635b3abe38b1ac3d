package entity

// ShippingDetails agrupa los datos de transporte de la exportación.
// El bloque solo se emite si al menos un campo no está vacío.
type ShippingDetails struct {
	PortOfShipment     string
	CountryOfOrigin    string
	PortOfDestination  string
	PlaceOfDestination string // lugar de destino final
	ShipmentTerm       string // incoterm u otro término pactado
}

// Empty indica si no hay ningún dato de transporte que mostrar.
func (s ShippingDetails) Empty() bool {
	return s.PortOfShipment == "" && s.CountryOfOrigin == "" &&
		s.PortOfDestination == "" && s.PlaceOfDestination == "" && s.ShipmentTerm == ""
}
