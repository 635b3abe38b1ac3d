package pdf

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/factura-export/internal/domain/billing"
	"github.com/jhoicas/factura-export/internal/domain/entity"
)

// ── Paleta y medidas ──────────────────────────────────────────────────────────

var (
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAccent = &props.Color{Red: 211, Green: 47, Blue: 47} // regla del gran total
)

const (
	partyLineHeight  = 4.0
	footerLineHeight = 4.0
	logoBoxSize      = 30.0 // caja cuadrada de 3cm para el logo
	stampBoxSize     = 25.0 // caja de 2.5cm para el sello
	summaryLabelSize = 5
	summaryValueSize = 3
)

// ── Cabecera ──────────────────────────────────────────────────────────────────

// headerRows: logo centrado (si existe), nombre y dirección del emisor
// centrados, título del documento en negrita, y el sub-bloque de dos
// columnas iguales con número/fecha a la izquierda y orden de compra a la
// derecha, ambas alineadas arriba.
func headerRows(p Profile, company entity.Company, header entity.InvoiceHeader, logo *loadedImage) []core.Row {
	var rows []core.Row

	if logo != nil {
		rows = append(rows,
			row.New(logoBoxSize).Add(
				image.NewFromBytesCol(p.GridWidth, logo.data, logo.ext,
					props.Rect{Center: true, Percent: 100}),
			),
			row.New(2),
		)
	}

	if company.Name != "" {
		rows = append(rows, row.New(5).Add(
			text.NewCol(p.GridWidth, company.Name, props.Text{Size: 11, Align: align.Center}),
		))
	}
	if company.Address != "" {
		rows = append(rows, row.New(5).Add(
			text.NewCol(p.GridWidth, company.Address, props.Text{Size: 11, Align: align.Center}),
		))
	}
	rows = append(rows, row.New(3))

	rows = append(rows,
		row.New(10).Add(
			text.NewCol(p.GridWidth, p.Title, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Top: 1,
			}),
		),
		row.New(3),
	)

	left := col.New(p.half()).Add(
		text.New("Invoice No.: "+header.Number, props.Text{Size: 9}),
		text.New("Date: "+header.Date, props.Text{Size: 9, Top: 5}),
	)
	height := 10.0
	if p.WithDueDate {
		left.Add(text.New("Due Date: "+header.DueDate, props.Text{Size: 9, Top: 10}))
		height = 15
	}
	right := col.New(p.half())
	if p.WithPONumber {
		right.Add(text.New("Purchase Order No.: "+header.PONumber, props.Text{Size: 9}))
	}
	rows = append(rows, row.New(height).Add(left, right), row.New(4))

	return rows
}

// ── Partes (remitente y consignatario) ───────────────────────────────────────

// fieldResolver produce a lo sumo una línea "Etiqueta: valor". El orden del
// slice es la prioridad fija de render; when permite reglas de exclusión
// entre campos sin anidar condicionales en el builder.
type fieldResolver struct {
	label string
	value func(entity.Party) string
	when  func(entity.Party) bool // nil ⇒ basta con que el valor no esté vacío
}

var shipperFields = []fieldResolver{
	{label: "Shipper Name", value: func(p entity.Party) string { return p.Name }},
	{label: "Shipper Address", value: func(p entity.Party) string { return p.Address }},
	{label: "Shipper Contact", value: func(p entity.Party) string { return p.Phone }},
}

var consigneeFields = []fieldResolver{
	{label: "Company Name", value: func(p entity.Party) string { return p.Name }},
	{label: "Plant Address", value: func(p entity.Party) string { return p.PlantAddress }},
	{label: "Pin", value: func(p entity.Party) string { return p.TaxPIN }},
	// La dirección de planta suprime la genérica: son excluyentes.
	{label: "Address", value: func(p entity.Party) string { return p.Address },
		when: func(p entity.Party) bool { return p.Address != "" && p.PlantAddress == "" }},
	{label: "Contact", value: func(p entity.Party) string { return p.Phone }},
	{label: "Other Information", value: func(p entity.Party) string { return p.Email }},
	{label: "Other", value: func(p entity.Party) string { return p.Other }},
}

func resolveLines(party entity.Party, fields []fieldResolver) []string {
	var lines []string
	for _, f := range fields {
		if f.when != nil {
			if !f.when(party) {
				continue
			}
		} else if f.value(party) == "" {
			continue
		}
		lines = append(lines, f.label+": "+f.value(party))
	}
	return lines
}

// partiesRow: remitente y consignatario lado a lado en dos columnas de
// igual ancho, cada una con fila de título en negrita. La altura común de
// la fila iguala visualmente ambas tablas aunque tengan distinto número de
// líneas.
func partiesRow(p Profile, shipper, consignee entity.Party) core.Row {
	leftLines := resolveLines(shipper, shipperFields)
	rightLines := resolveLines(consignee, consigneeFields)

	n := len(leftLines)
	if len(rightLines) > n {
		n = len(rightLines)
	}
	height := 6 + partyLineHeight*float64(n)

	return row.New(height).Add(
		partyCol(p.half(), "Shipper", leftLines),
		partyCol(p.half(), "Consignee/Buyer", rightLines),
	)
}

func partyCol(size int, title string, lines []string) core.Col {
	c := col.New(size).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10}),
	)
	for i, ln := range lines {
		c.Add(text.New(ln, props.Text{Size: 9, Top: 6 + partyLineHeight*float64(i)}))
	}
	return c
}

// ── Transporte ────────────────────────────────────────────────────────────────

// shippingRows: misma estructura de dos columnas que las partes; solo se
// emite si hay al menos un campo con datos (sin dejar hueco si no los hay).
func shippingRows(p Profile, s entity.ShippingDetails) []core.Row {
	if s.Empty() {
		return nil
	}

	var left, right []string
	if s.PortOfShipment != "" {
		left = append(left, "Port of Shipment: "+s.PortOfShipment)
	}
	if s.CountryOfOrigin != "" {
		left = append(left, "Country of Origin: "+s.CountryOfOrigin)
	}
	if s.PortOfDestination != "" {
		right = append(right, "Port of Destination: "+s.PortOfDestination)
	}
	if s.PlaceOfDestination != "" {
		right = append(right, "Place of Final Destination: "+s.PlaceOfDestination)
	}
	if s.ShipmentTerm != "" {
		right = append(right, "Shipment Term: "+s.ShipmentTerm)
	}

	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	height := 6 + partyLineHeight*float64(n)

	rightCol := col.New(p.half())
	// Las líneas de la derecha arrancan a la altura de las de la izquierda,
	// dejando libre la fila del título.
	for i, ln := range right {
		rightCol.Add(text.New(ln, props.Text{Size: 9, Top: 6 + partyLineHeight*float64(i)}))
	}

	return []core.Row{
		row.New(height).Add(
			partyCol(p.half(), "Shipping Details", left),
			rightCol,
		),
		row.New(3),
	}
}

// ── Tabla de ítems ────────────────────────────────────────────────────────────

// productSectionRows: título centrado de la sección de producto y, si
// existe, el párrafo de descripción general.
func productSectionRows(p Profile, description string) []core.Row {
	var rows []core.Row
	if p.SectionTitle != "" {
		rows = append(rows, row.New(8).Add(
			text.NewCol(p.GridWidth, p.SectionTitle, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 1,
			}),
		))
	}
	if description != "" {
		rows = append(rows, row.New(6).Add(
			text.NewCol(p.GridWidth, "Product Description: "+description,
				props.Text{Size: 10, Top: 1}),
		))
	}
	rows = append(rows, row.New(2))
	return rows
}

// itemTableRows: cabecera con moneda en las columnas monetarias, una fila
// por ítem y la fila TOTAL sintetizada al final.
func itemTableRows(p Profile, currency string, items []entity.LineItem, totals billing.Totals) []core.Row {
	cols := p.ActiveColumns()
	sizes := p.ColumnSizes()

	rows := make([]core.Row, 0, len(items)+2)
	rows = append(rows, itemHeaderRow(cols, sizes, currency))
	for i, it := range items {
		rows = append(rows, itemRow(cols, sizes, i+1, it))
	}
	rows = append(rows, totalRow(cols, sizes, totals))
	return rows
}

func itemHeaderRow(cols []ColumnSpec, sizes []int, currency string) core.Row {
	r := row.New(8)
	for i, c := range cols {
		label := c.Label
		if c.Monetary {
			label = fmt.Sprintf("%s (%s)", c.Label, currency)
		}
		r.Add(text.NewCol(sizes[i], label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 2,
		}))
	}
	return r
}

func itemRow(cols []ColumnSpec, sizes []int, idx int, it entity.LineItem) core.Row {
	r := row.New(6)
	for i, c := range cols {
		r.Add(text.NewCol(sizes[i], itemCell(c, idx, it), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		}))
	}
	return r
}

func itemCell(c ColumnSpec, idx int, it entity.LineItem) string {
	switch c.ID {
	case ColumnNo:
		return strconv.Itoa(idx)
	case ColumnProductName:
		if it.ProductName != "" {
			return it.ProductName
		}
		return it.Description
	case ColumnProductNumber:
		return it.ProductNumber
	case ColumnItemNumber:
		return it.ItemNumber
	case ColumnHSCode:
		return it.HSCode
	case ColumnQuantity:
		return billing.FormatQuantity(it.Quantity)
	case ColumnUnitPrice:
		return billing.FormatMoney(it.UnitPrice)
	case ColumnAmount:
		return billing.FormatMoney(billing.ItemAmount(it))
	}
	return ""
}

// totalRow: fila TOTAL en negrita. La cantidad agregada solo aparece si es
// mayor que cero; el importe agregado siempre, aunque sea 0.00.
func totalRow(cols []ColumnSpec, sizes []int, t billing.Totals) core.Row {
	labelIdx := 0
	if len(cols) > 1 {
		labelIdx = 1
	}

	r := row.New(7)
	for i, c := range cols {
		var value string
		cellAlign := align.Center
		switch {
		case i == labelIdx:
			value, cellAlign = "TOTAL", align.Left
		case c.ID == ColumnQuantity && t.TotalQuantity.GreaterThan(decimal.Zero):
			value = billing.FormatQuantity(t.TotalQuantity)
		case c.ID == ColumnAmount:
			value = billing.FormatMoney(t.Subtotal)
		}
		r.Add(text.NewCol(sizes[i], value, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: cellAlign, Top: 1,
		}))
	}
	return r
}

// ── Resumen de totales ────────────────────────────────────────────────────────

// totalsSummaryRows: subtotal, descuento (siempre en negativo), impuesto y
// gran total alineados a la derecha. El gran total cierra con una regla
// roja; cuando impuesto y descuento son cero el bloque no se emite y el
// importe de la fila TOTAL ya es el total del documento.
func totalsSummaryRows(p Profile, currency string, t billing.Totals) []core.Row {
	filler := p.GridWidth - summaryLabelSize - summaryValueSize
	ruleSize := summaryLabelSize + summaryValueSize

	return []core.Row{
		row.New(1).Add(
			col.New(filler),
			line.NewCol(ruleSize, props.Line{Color: colorGray, Thickness: 0.4}),
		),
		summaryLine(filler, "Subtotal ("+currency+"):", billing.FormatMoney(t.Subtotal), false),
		summaryLine(filler, "Discount ("+currency+"):", billing.FormatDiscount(t.Discount), false),
		summaryLine(filler, "Tax ("+currency+"):", billing.FormatMoney(t.TaxAmount), false),
		summaryLine(filler, "Total Amount ("+currency+"):", billing.FormatMoney(t.GrandTotal), true),
		row.New(1).Add(
			col.New(filler),
			line.NewCol(ruleSize, props.Line{Color: colorAccent, Thickness: 0.8}),
		),
		row.New(3),
	}
}

func summaryLine(filler int, label, value string, grand bool) core.Row {
	ps := props.Text{Size: 10, Align: align.Right, Right: 1}
	if grand {
		ps.Style = fontstyle.Bold
		ps.Size = 11
		ps.Color = colorAccent
	}
	return row.New(5).Add(
		col.New(filler),
		text.NewCol(summaryLabelSize, label, ps),
		text.NewCol(summaryValueSize, value, ps),
	)
}

// ── Pie ───────────────────────────────────────────────────────────────────────

type footerLine struct {
	text string
	bold bool
}

// footerRows: notas y datos de pago a la izquierda, sello a la derecha.
// Si no hay ninguno de los tres, no se emite bloque alguno.
func footerRows(p Profile, notes string, payment *entity.PaymentInfo, stamp *loadedImage) []core.Row {
	var lines []footerLine
	if notes != "" {
		lines = append(lines, footerLine{text: "Notes: " + notes})
	}
	if payment != nil && payment.Present() {
		lines = append(lines,
			footerLine{text: "Payment Information:", bold: true},
			footerLine{text: "Bank: " + payment.Bank},
			footerLine{text: "Account: " + payment.Account},
		)
		if payment.SWIFT != "" {
			lines = append(lines, footerLine{text: "SWIFT: " + payment.SWIFT})
		}
	}
	if len(lines) == 0 && stamp == nil {
		return nil
	}

	height := footerLineHeight*float64(len(lines)) + 2
	if stamp != nil && height < stampBoxSize {
		height = stampBoxSize
	}

	leftSize := p.GridWidth * 3 / 4
	left := col.New(leftSize)
	for i, ln := range lines {
		ps := props.Text{Size: 9, Color: colorGray, Top: footerLineHeight * float64(i)}
		if ln.bold {
			ps.Style = fontstyle.Bold
		}
		left.Add(text.New(ln.text, ps))
	}

	r := row.New(height).Add(left)
	if stamp != nil {
		r.Add(image.NewFromBytesCol(p.GridWidth-leftSize, stamp.data, stamp.ext,
			props.Rect{Center: true, Percent: 100}))
	} else {
		r.Add(col.New(p.GridWidth - leftSize))
	}

	return []core.Row{row.New(3), r}
}
