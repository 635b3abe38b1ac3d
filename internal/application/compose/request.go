// Package compose normaliza la entrada cruda (mapas de campos tipo
// formulario) en la petición tipada que consume el composer de PDF.
//
// Regla de tolerancia: los campos numéricos opcionales en blanco o
// inválidos se convierten en 0 y nunca propagan error; solo el contador de
// ítems repetidos rechaza entrada no numérica.
package compose

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/factura-export/internal/domain"
	"github.com/jhoicas/factura-export/internal/domain/entity"
)

// FieldMap es la entrada débilmente tipada: claves de formulario a valores
// texto, posiblemente vacíos o ausentes.
type FieldMap map[string]string

// Get devuelve el valor de la clave, o "" si no existe.
func (f FieldMap) Get(key string) string { return f[key] }

// ComposeRequest es la petición ya tipada de generación de un documento.
// Se construye una vez por petición, se usa solo-lectura y se descarta.
type ComposeRequest struct {
	OutputPath string

	Company  entity.Company
	Customer entity.Party
	Shipper  entity.Party // opcional; si está vacío, el layout usa Company como remitente implícito
	Header   entity.InvoiceHeader

	Items    []entity.LineItem
	TaxRate  decimal.Decimal // porcentaje
	Discount decimal.Decimal // monto en moneda, magnitud

	Notes    string
	Payment  *entity.PaymentInfo
	Shipping *entity.ShippingDetails

	ProductDescription string
	LogoPath           string // opcional; ilegible ⇒ se omite la imagen
	StampPath          string // opcional; ilegible ⇒ se omite la imagen
	Currency           string // código de 3 letras; por defecto CNY
}

// ParseForm transforma el mapa de campos en una petición tipada y aplica los
// valores por defecto. Es una transformación pura salvo por el número de
// factura autogenerado y la fecha actual.
func ParseForm(form FieldMap) (*ComposeRequest, error) {
	count, err := parseItemCount(form.Get("item_count"))
	if err != nil {
		return nil, err
	}

	req := &ComposeRequest{
		Company: entity.Company{
			Name:    form.Get("company_name"),
			Address: form.Get("company_address"),
			Phone:   form.Get("company_phone"),
			Email:   form.Get("company_email"),
		},
		Customer: entity.Party{
			Name:         form.Get("customer_name"),
			Address:      form.Get("customer_address"),
			Phone:        form.Get("customer_phone"),
			Email:        form.Get("customer_email"),
			PlantAddress: form.Get("customer_plant_address"),
			TaxPIN:       form.Get("customer_pin"),
			Other:        form.Get("customer_other"),
		},
		Shipper: entity.Party{
			Name:    form.Get("shipper_name"),
			Address: form.Get("shipper_address"),
			Phone:   form.Get("shipper_phone"),
		},
		Header: entity.InvoiceHeader{
			Number:   form.Get("invoice_number"),
			Date:     form.Get("invoice_date"),
			DueDate:  form.Get("due_date"),
			PONumber: form.Get("po_number"),
		},
		TaxRate:            lenientDecimal(form.Get("tax_rate")),
		Discount:           lenientDecimal(form.Get("discount")),
		Notes:              form.Get("notes"),
		ProductDescription: form.Get("product_description"),
		Currency:           form.Get("currency"),
	}

	for i := 0; i < count; i++ {
		it := entity.LineItem{
			ProductName:   form.Get(fmt.Sprintf("item_product_name_%d", i)),
			ProductNumber: form.Get(fmt.Sprintf("item_product_number_%d", i)),
			ItemNumber:    form.Get(fmt.Sprintf("item_item_number_%d", i)),
			HSCode:        form.Get(fmt.Sprintf("item_hs_code_%d", i)),
			Description:   form.Get(fmt.Sprintf("item_description_%d", i)),
			Quantity:      lenientDecimal(form.Get(fmt.Sprintf("item_quantity_%d", i))),
			UnitPrice:     lenientDecimal(form.Get(fmt.Sprintf("item_unit_price_%d", i))),
			Amount:        lenientDecimal(form.Get(fmt.Sprintf("item_amount_%d", i))),
		}
		req.Items = append(req.Items, it)
	}

	if bank, account := form.Get("bank"), form.Get("account"); bank != "" || account != "" {
		req.Payment = &entity.PaymentInfo{
			Bank:    bank,
			Account: account,
			SWIFT:   form.Get("swift"),
		}
	}

	shipping := entity.ShippingDetails{
		PortOfShipment:     form.Get("port_of_shipment"),
		CountryOfOrigin:    form.Get("country_of_origin"),
		PortOfDestination:  form.Get("port_of_destination"),
		PlaceOfDestination: form.Get("place_of_destination"),
		ShipmentTerm:       form.Get("shipment_term"),
	}
	if !shipping.Empty() {
		req.Shipping = &shipping
	}

	req.Normalize()
	return req, nil
}

// Normalize aplica defaults e invariantes sobre una petición construida
// programáticamente (o recién parseada): filtra ítems sin descripción,
// resuelve el importe por línea, genera número de factura si falta y
// completa fecha, vencimiento y moneda.
func (r *ComposeRequest) Normalize() {
	kept := r.Items[:0]
	for _, it := range r.Items {
		if strings.TrimSpace(it.Description) == "" {
			continue
		}
		if it.Amount.IsZero() {
			it.Amount = it.Quantity.Mul(it.UnitPrice)
		}
		kept = append(kept, it)
	}
	r.Items = kept

	if r.Header.Number == "" {
		r.Header.Number = newInvoiceNumber()
	}
	if r.Header.Date == "" {
		r.Header.Date = time.Now().Format("2006-01-02")
	}
	if r.Header.DueDate == "" {
		base, err := time.Parse("2006-01-02", r.Header.Date)
		if err != nil {
			base = time.Now()
		}
		r.Header.DueDate = base.AddDate(0, 0, 30).Format("2006-01-02")
	}

	r.Discount = r.Discount.Abs()

	if r.Currency == "" {
		r.Currency = "CNY"
	}
	r.Currency = strings.ToUpper(r.Currency)
}

// parseItemCount es el único campo numérico estricto: en blanco vale 1,
// pero un valor no numérico aborta la generación.
func parseItemCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: item_count %q no es numérico", domain.ErrInvalidInput, s)
	}
	if n < 0 {
		// Un contador negativo simplemente no aporta ítems.
		return 0, nil
	}
	return n, nil
}

// lenientDecimal convierte texto en decimal con la regla "en blanco o
// inválido ⇒ 0". Nunca devuelve error: los campos numéricos opcionales no
// abortan la generación.
func lenientDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// newInvoiceNumber genera el token de 8 hex para facturas sin número.
func newInvoiceNumber() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
