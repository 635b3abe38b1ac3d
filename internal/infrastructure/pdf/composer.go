// Package pdf implementa el composer de la factura comercial de
// exportación usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  [LOGO centrado]                                             │
//	│  Emisor (nombre + dirección, centrado)                       │
//	│  COMMERCIAL INVOICE                                          │
//	│  Invoice No. + Date        │  Purchase Order No.             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Shipper                   │  Consignee/Buyer                │
//	│  Shipping Details          │  (condicional)                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Product Information                                         │
//	│  TABLA: No | Name | ... | Quantity | Unit Price | Amount     │
//	│  TOTAL ................................................      │
//	│  Subtotal / Discount / Tax / TOTAL (condicional)             │
//	│  Notes + Payment Information            [SELLO]              │
//	└─────────────────────────────────────────────────────────────┘
//
// La composición es determinista: mismo request normalizado, mismo bloque
// de filas. La paginación automática la aporta maroto.
package pdf

import (
	"fmt"
	"os"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/factura-export/internal/application/compose"
	"github.com/jhoicas/factura-export/internal/domain"
	"github.com/jhoicas/factura-export/internal/domain/billing"
	"github.com/jhoicas/factura-export/internal/domain/entity"
	"github.com/jhoicas/factura-export/pkg/logger"
)

// Options son los márgenes de página en milímetros.
type Options struct {
	LeftMargin   float64
	RightMargin  float64
	TopMargin    float64
	BottomMargin float64
}

// DefaultOptions reproduce los márgenes clásicos del documento:
// 10mm laterales y 15mm verticales sobre A4.
func DefaultOptions() Options {
	return Options{LeftMargin: 10, RightMargin: 10, TopMargin: 15, BottomMargin: 15}
}

// Composer arma el documento final a partir de una petición normalizada.
// Es stateless por invocación: cada documento parte de una lista de filas
// limpia, por lo que es seguro usar un mismo Composer en paralelo.
type Composer struct {
	log  *logger.Logger
	opts Options
}

// NewComposer construye el composer.
func NewComposer(log *logger.Logger, opts Options) *Composer {
	return &Composer{log: log, opts: opts}
}

// Compose genera el documento completo y devuelve sus bytes.
// Las imágenes ilegibles se omiten con un warn; nunca abortan.
func (c *Composer) Compose(req *compose.ComposeRequest, p Profile) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(c.opts.LeftMargin).WithRightMargin(c.opts.RightMargin).
		WithTopMargin(c.opts.TopMargin).WithBottomMargin(c.opts.BottomMargin).
		WithMaxGridSize(p.GridWidth).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(p.Title, true).
		WithAuthor(req.Company.Name, true).
		Build()

	m := maroto.New(cfg)
	for _, r := range c.buildRows(req, p) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return doc.GetBytes(), nil
}

// ComposeToFile genera el documento y escribe exactamente un archivo en la
// ruta pedida. Los bytes se generan completos antes de escribir: un error
// de render nunca deja un artefacto parcial.
func (c *Composer) ComposeToFile(req *compose.ComposeRequest, p Profile) (string, error) {
	if req.OutputPath == "" {
		return "", domain.ErrNoOutputPath
	}

	b, err := c.Compose(req, p)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(req.OutputPath, b, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrWriteArtifact, err)
	}

	c.log.Info().
		Str("path", req.OutputPath).
		Str("invoice", req.Header.Number).
		Int("bytes", len(b)).
		Msg("factura generada")
	return req.OutputPath, nil
}

// buildRows produce la lista ordenada de bloques del documento.
func (c *Composer) buildRows(req *compose.ComposeRequest, p Profile) []core.Row {
	var rows []core.Row

	logo := c.optionalImage(req.LogoPath, "logo")
	rows = append(rows, headerRows(p, req.Company, req.Header, logo)...)
	rows = append(rows, line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	// Sin remitente explícito, el emisor actúa como remitente implícito.
	shipper := req.Shipper
	if shipper.Empty() {
		shipper = entity.Party{
			Name:    req.Company.Name,
			Address: req.Company.Address,
			Phone:   req.Company.Phone,
		}
	}
	rows = append(rows, partiesRow(p, shipper, req.Customer), row.New(3))

	if req.Shipping != nil {
		rows = append(rows, shippingRows(p, *req.Shipping)...)
	}

	totals := billing.Calculate(req.Items, req.TaxRate, req.Discount)
	rows = append(rows, productSectionRows(p, req.ProductDescription)...)
	rows = append(rows, itemTableRows(p, req.Currency, req.Items, totals)...)

	if totals.HasSummary() {
		rows = append(rows, totalsSummaryRows(p, req.Currency, totals)...)
	}

	stamp := c.optionalImage(req.StampPath, "stamp")
	rows = append(rows, footerRows(p, req.Notes, req.Payment, stamp)...)

	return rows
}

// optionalImage carga una imagen opcional; una falla se degrada a un warn y
// el documento sigue sin ella.
func (c *Composer) optionalImage(path, kind string) *loadedImage {
	img, reason := loadImage(path)
	if img == nil && reason != "" {
		c.log.Warn().
			Str("imagen", kind).
			Str("path", path).
			Str("motivo", reason).
			Msg("imagen omitida del documento")
	}
	return img
}
