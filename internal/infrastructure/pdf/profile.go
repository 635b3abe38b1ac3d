package pdf

import "sort"

// Identificadores de columna de la tabla de ítems.
const (
	ColumnNo            = "no"
	ColumnProductName   = "product_name"
	ColumnProductNumber = "product_number"
	ColumnItemNumber    = "item_number"
	ColumnHSCode        = "hs_code"
	ColumnQuantity      = "quantity"
	ColumnUnitPrice     = "unit_price"
	ColumnAmount        = "amount"
)

// ColumnSpec describe una columna de la tabla: etiqueta, peso proporcional
// sobre el ancho útil de la página y si su cabecera lleva la moneda.
type ColumnSpec struct {
	ID       string
	Label    string
	Weight   float64
	Monetary bool
}

// Profile es la configuración de layout resuelta una vez por documento:
// qué secciones y columnas opcionales existen en esta variante. Las
// variantes históricas del documento colapsan en valores de este tipo en
// lugar de caminos de código duplicados.
type Profile struct {
	Title        string // título central del documento
	SectionTitle string // título sobre la tabla de ítems

	WithProductName bool // columna Product Name en la tabla
	WithPONumber    bool // orden de compra en la cabecera
	WithDueDate     bool // fecha de vencimiento en la cabecera

	// GridWidth es el grid de maroto para todo el documento. Debe ser par:
	// los bloques de partes y transporte usan dos mitades iguales.
	GridWidth int
	Columns   []ColumnSpec
}

// CommercialInvoiceProfile es la variante por defecto: factura comercial de
// exportación con las ocho columnas y orden de compra, sin vencimiento.
// Los pesos reproducen el reparto clásico del ancho útil (190mm):
// 0.7 / 4.5 / 3.0 / 3.0 / 2.0 / 1.2 / 2.0 / 2.6.
func CommercialInvoiceProfile() Profile {
	return Profile{
		Title:           "COMMERCIAL INVOICE",
		SectionTitle:    "Product Information",
		WithProductName: true,
		WithPONumber:    true,
		GridWidth:       20,
		Columns: []ColumnSpec{
			{ID: ColumnNo, Label: "No.", Weight: 0.7},
			{ID: ColumnProductName, Label: "Product Name", Weight: 4.5},
			{ID: ColumnProductNumber, Label: "Product Number", Weight: 3.0},
			{ID: ColumnItemNumber, Label: "Item Number", Weight: 3.0},
			{ID: ColumnHSCode, Label: "HS Code", Weight: 2.0},
			{ID: ColumnQuantity, Label: "Quantity", Weight: 1.2},
			{ID: ColumnUnitPrice, Label: "Unit Price", Weight: 2.0, Monetary: true},
			{ID: ColumnAmount, Label: "Amount", Weight: 2.6, Monetary: true},
		},
	}
}

// ActiveColumns devuelve las columnas vigentes para esta variante.
// Una columna omitida no deja hueco: su peso se reparte entre las demás
// al calcular los tamaños de grid.
func (p Profile) ActiveColumns() []ColumnSpec {
	cols := make([]ColumnSpec, 0, len(p.Columns))
	for _, c := range p.Columns {
		if c.ID == ColumnProductName && !p.WithProductName {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

// half es el ancho de una de las dos columnas iguales de los bloques de
// partes, transporte y cabecera.
func (p Profile) half() int { return p.GridWidth / 2 }

// ColumnSizes reparte GridWidth entre las columnas activas en proporción a
// sus pesos (método del mayor resto, con mínimo de 1 por columna). La suma
// es siempre exactamente GridWidth.
func (p Profile) ColumnSizes() []int {
	cols := p.ActiveColumns()
	if len(cols) == 0 {
		return nil
	}

	var weightSum float64
	for _, c := range cols {
		weightSum += c.Weight
	}

	sizes := make([]int, len(cols))
	type leftover struct {
		idx  int
		frac float64
	}
	rest := make([]leftover, 0, len(cols))
	used := 0
	for i, c := range cols {
		exact := c.Weight / weightSum * float64(p.GridWidth)
		sizes[i] = int(exact)
		used += sizes[i]
		rest = append(rest, leftover{idx: i, frac: exact - float64(sizes[i])})
	}
	sort.SliceStable(rest, func(a, b int) bool { return rest[a].frac > rest[b].frac })
	for k := 0; used < p.GridWidth; k++ {
		sizes[rest[k%len(rest)].idx]++
		used++
	}

	// Ninguna columna puede quedar en 0: roba una unidad a la más ancha.
	for i := range sizes {
		if sizes[i] > 0 {
			continue
		}
		widest := 0
		for j := range sizes {
			if sizes[j] > sizes[widest] {
				widest = j
			}
		}
		sizes[i] = 1
		sizes[widest]--
	}
	return sizes
}
