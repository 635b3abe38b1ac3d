package compose_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factura-export/internal/application/compose"
	"github.com/jhoicas/factura-export/internal/domain"
	"github.com/jhoicas/factura-export/internal/domain/entity"
)

func baseForm() compose.FieldMap {
	return compose.FieldMap{
		"company_name":  "ABC Technology",
		"customer_name": "XYZ Trading",
		"item_count":    "1",

		"item_description_0": "Widget",
		"item_quantity_0":    "2",
		"item_unit_price_0":  "10.00",
	}
}

func TestParseFormFiltersItemsWithoutDescription(t *testing.T) {
	form := baseForm()
	form["item_count"] = "3"
	form["item_description_1"] = "   " // solo espacios: se descarta
	form["item_quantity_1"] = "99"
	// item 2 sin descripción alguna

	req, err := compose.ParseForm(form)

	require.NoError(t, err)
	require.Len(t, req.Items, 1)
	assert.Equal(t, "Widget", req.Items[0].Description)
}

func TestParseFormLenientNumerics(t *testing.T) {
	form := baseForm()
	form["item_quantity_0"] = "abc" // inválido ⇒ 0, nunca error
	form["item_unit_price_0"] = ""
	form["tax_rate"] = "no-numérico"
	form["discount"] = ""

	req, err := compose.ParseForm(form)

	require.NoError(t, err)
	require.Len(t, req.Items, 1)
	assert.True(t, req.Items[0].Quantity.IsZero())
	assert.True(t, req.Items[0].UnitPrice.IsZero())
	assert.True(t, req.TaxRate.IsZero())
	assert.True(t, req.Discount.IsZero())
}

func TestParseFormComputesAmountFromQuantityAndPrice(t *testing.T) {
	req, err := compose.ParseForm(baseForm())

	require.NoError(t, err)
	assert.Equal(t, "20.00", req.Items[0].Amount.StringFixed(2))
}

func TestParseFormExplicitAmountOverrides(t *testing.T) {
	form := baseForm()
	form["item_amount_0"] = "30"

	req, err := compose.ParseForm(form)

	require.NoError(t, err)
	assert.Equal(t, "30.00", req.Items[0].Amount.StringFixed(2))
}

// item_count es el único campo numérico estricto: vacío vale 1, pero un
// valor no numérico aborta la generación con un error de entrada.
func TestParseFormItemCount(t *testing.T) {
	form := baseForm()
	delete(form, "item_count")
	req, err := compose.ParseForm(form)
	require.NoError(t, err)
	assert.Len(t, req.Items, 1)

	form = baseForm()
	form["item_count"] = "tres"
	req, err = compose.ParseForm(form)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Nil(t, req)
}

func TestParseFormDefaults(t *testing.T) {
	req, err := compose.ParseForm(baseForm())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), req.Header.Number,
		"sin número se sintetiza un token de 8 hex")

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, req.Header.Date)

	due, perr := time.Parse("2006-01-02", req.Header.DueDate)
	require.NoError(t, perr)
	issue, _ := time.Parse("2006-01-02", req.Header.Date)
	assert.Equal(t, issue.AddDate(0, 0, 30), due)

	assert.Equal(t, "CNY", req.Currency)
}

func TestParseFormExplicitValuesKept(t *testing.T) {
	form := baseForm()
	form["invoice_number"] = "INV-2024-001"
	form["invoice_date"] = "2024-03-01"
	form["due_date"] = "2024-04-15"
	form["currency"] = "usd"

	req, err := compose.ParseForm(form)
	require.NoError(t, err)

	assert.Equal(t, "INV-2024-001", req.Header.Number)
	assert.Equal(t, "2024-03-01", req.Header.Date)
	assert.Equal(t, "2024-04-15", req.Header.DueDate)
	assert.Equal(t, "USD", req.Currency, "la moneda se normaliza a mayúsculas")
}

func TestParseFormPaymentPresence(t *testing.T) {
	req, err := compose.ParseForm(baseForm())
	require.NoError(t, err)
	assert.Nil(t, req.Payment, "sin banco ni cuenta no hay bloque de pago")

	form := baseForm()
	form["bank"] = "ICBC"
	req, err = compose.ParseForm(form)
	require.NoError(t, err)
	require.NotNil(t, req.Payment)
	assert.True(t, req.Payment.Present())
}

func TestParseFormShippingPresence(t *testing.T) {
	req, err := compose.ParseForm(baseForm())
	require.NoError(t, err)
	assert.Nil(t, req.Shipping, "sin datos de transporte no hay bloque")

	form := baseForm()
	form["port_of_shipment"] = "Shanghai"
	req, err = compose.ParseForm(form)
	require.NoError(t, err)
	require.NotNil(t, req.Shipping)
	assert.Equal(t, "Shanghai", req.Shipping.PortOfShipment)
}

// Normalize también cubre las peticiones construidas programáticamente
// (el camino del CLI): filtra ítems y resuelve importes igual que ParseForm.
func TestNormalizeProgrammaticRequest(t *testing.T) {
	req := &compose.ComposeRequest{
		Items: []entity.LineItem{
			{Description: "Widget", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(10)},
			{Description: "\t \n"},
		},
		Discount: decimal.NewFromInt(-7),
	}

	req.Normalize()

	require.Len(t, req.Items, 1)
	assert.Equal(t, "20.00", req.Items[0].Amount.StringFixed(2))
	assert.Equal(t, "7.00", req.Discount.StringFixed(2))
	assert.Equal(t, "CNY", req.Currency)
	assert.NotEmpty(t, req.Header.Number)
}
