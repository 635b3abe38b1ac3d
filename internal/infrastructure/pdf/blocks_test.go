package pdf

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factura-export/internal/domain/entity"
)

func TestResolveConsigneeLines(t *testing.T) {
	party := entity.Party{
		Name:         "XYZ Trading",
		Address:      "456 Commerce Street",
		PlantAddress: "Industrial Park Lot 9",
		TaxPIN:       "AB-123",
		Phone:        "+86-21-87654321",
	}

	lines := resolveLines(party, consigneeFields)

	// Plant Address suprime Address; el orden es la prioridad fija.
	require.Equal(t, []string{
		"Company Name: XYZ Trading",
		"Plant Address: Industrial Park Lot 9",
		"Pin: AB-123",
		"Contact: +86-21-87654321",
	}, lines)
}

func TestResolveConsigneeAddressWithoutPlant(t *testing.T) {
	party := entity.Party{Name: "XYZ", Address: "456 Commerce Street"}

	lines := resolveLines(party, consigneeFields)

	require.Equal(t, []string{
		"Company Name: XYZ",
		"Address: 456 Commerce Street",
	}, lines)
}

func TestItemCellProductNameFallsBackToDescription(t *testing.T) {
	spec := ColumnSpec{ID: ColumnProductName}

	withName := entity.LineItem{ProductName: "Widget Pro", Description: "A widget"}
	assert.Equal(t, "Widget Pro", itemCell(spec, 1, withName))

	noName := entity.LineItem{Description: "A widget"}
	assert.Equal(t, "A widget", itemCell(spec, 1, noName))
}

func TestItemCellFormats(t *testing.T) {
	it := entity.LineItem{
		Description: "Widget",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.NewFromFloat(1250.5),
	}

	assert.Equal(t, "2", itemCell(ColumnSpec{ID: ColumnQuantity}, 1, it))
	assert.Equal(t, "1,250.50", itemCell(ColumnSpec{ID: ColumnUnitPrice}, 1, it))
	assert.Equal(t, "2,501.00", itemCell(ColumnSpec{ID: ColumnAmount}, 1, it))
}

func TestShippingRowsEmptyYieldsNothing(t *testing.T) {
	p := CommercialInvoiceProfile()
	assert.Nil(t, shippingRows(p, entity.ShippingDetails{}),
		"sin campos no hay bloque ni hueco")

	rows := shippingRows(p, entity.ShippingDetails{CountryOfOrigin: "China"})
	assert.NotEmpty(t, rows)
}

func TestFooterRowsAbsentWhenEmpty(t *testing.T) {
	p := CommercialInvoiceProfile()

	assert.Nil(t, footerRows(p, "", nil, nil))
	assert.Nil(t, footerRows(p, "", &entity.PaymentInfo{SWIFT: "X"}, nil),
		"pago sin banco ni cuenta no cuenta como presente")
	assert.NotEmpty(t, footerRows(p, "gracias", nil, nil))
}

func TestLoadImage(t *testing.T) {
	img, reason := loadImage("")
	assert.Nil(t, img)
	assert.Empty(t, reason, "ruta vacía no es un error, simplemente no hay imagen")

	img, reason = loadImage(filepath.Join(t.TempDir(), "no-existe.png"))
	assert.Nil(t, img)
	assert.NotEmpty(t, reason)

	img, reason = loadImage("logo.bmp")
	assert.Nil(t, img)
	assert.Contains(t, reason, "formato de imagen no soportado")
}
