// invoicegen genera facturas comerciales de exportación en PDF.
//
//	invoicegen sample                  # factura de demostración
//	invoicegen generate -c datos.json  # factura desde un documento JSON
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhoicas/factura-export/internal/application/compose"
	"github.com/jhoicas/factura-export/internal/domain/entity"
	"github.com/jhoicas/factura-export/internal/infrastructure/pdf"
	"github.com/jhoicas/factura-export/pkg/config"
	"github.com/jhoicas/factura-export/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	composer := pdf.NewComposer(log, pdf.Options{
		LeftMargin:   cfg.PDF.LeftMargin,
		RightMargin:  cfg.PDF.RightMargin,
		TopMargin:    cfg.PDF.TopMargin,
		BottomMargin: cfg.PDF.BottomMargin,
	})

	root := &cobra.Command{
		Use:           "invoicegen",
		Short:         "Generador de facturas comerciales de exportación (PDF)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(cfg, composer), newSampleCmd(cfg, composer))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		os.Exit(1)
	}
}

// ── generate ──────────────────────────────────────────────────────────────────

func newGenerateCmd(cfg *config.Config, composer *pdf.Composer) *cobra.Command {
	var dataFile, output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Genera una factura desde un documento JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(dataFile)
			if err != nil {
				return err
			}

			req := doc.toRequest(cfg.PDF.DefaultCurrency)
			req.Normalize()

			if output == "" {
				output = filepath.Join(cfg.Output.Dir,
					fmt.Sprintf("invoice_%s.pdf", req.Header.Number))
			}
			req.OutputPath = output

			path, err := composer.ComposeToFile(req, pdf.CommercialInvoiceProfile())
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataFile, "config", "c", "", "documento JSON con los datos de la factura")
	cmd.Flags().StringVarP(&output, "output", "o", "", "ruta del PDF de salida")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// ── sample ────────────────────────────────────────────────────────────────────

func newSampleCmd(cfg *config.Config, composer *pdf.Composer) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Genera una factura de demostración",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := sampleRequest()
			req.Normalize()
			req.OutputPath = filepath.Join(cfg.Output.Dir,
				fmt.Sprintf("invoice_%s.pdf", req.Header.Number))

			path, err := composer.ComposeToFile(req, pdf.CommercialInvoiceProfile())
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func sampleRequest() *compose.ComposeRequest {
	today := time.Now()
	return &compose.ComposeRequest{
		Company: entity.Company{
			Name:    "ABC Technology Co., Ltd.",
			Address: "123 Science Park, Chaoyang District, Beijing",
			Phone:   "+86-10-12345678",
			Email:   "info@abctech.com",
		},
		Customer: entity.Party{
			Name:    "XYZ Trading Co., Ltd.",
			Address: "456 Commerce Street, Pudong, Shanghai",
			Phone:   "+86-21-87654321",
			Email:   "contact@xyztrade.com",
		},
		Header: entity.InvoiceHeader{
			Number: "INV-" + today.Format("20060102") + "-001",
			Date:   today.Format("2006-01-02"),
		},
		Items: []entity.LineItem{
			{Description: "Software development - web platform",
				Quantity:  decimal.NewFromInt(40),
				UnitPrice: decimal.NewFromFloat(500.00)},
			{Description: "Technical support - monthly maintenance",
				Quantity:  decimal.NewFromInt(12),
				UnitPrice: decimal.NewFromFloat(1000.00)},
			{Description: "Consulting - technical advisory",
				Quantity:  decimal.NewFromInt(8),
				UnitPrice: decimal.NewFromFloat(800.00)},
		},
		TaxRate:  decimal.NewFromFloat(13),
		Discount: decimal.NewFromFloat(500),
		Notes:    "Please pay before the due date. Contact us with any questions.",
		Payment: &entity.PaymentInfo{
			Bank:    "Industrial and Commercial Bank of China",
			Account: "1234 5678 9012 3456",
			SWIFT:   "ICBKCNBJ",
		},
	}
}

// ── documento JSON ────────────────────────────────────────────────────────────

// invoiceDocument refleja el formato JSON de entrada del comando generate.
type invoiceDocument struct {
	Company  partyDoc  `mapstructure:"company_info"`
	Customer partyDoc  `mapstructure:"customer_info"`
	Shipper  partyDoc  `mapstructure:"shipper_info"`
	Invoice  headerDoc `mapstructure:"invoice_info"`
	Items    []itemDoc `mapstructure:"items"`
	TaxRate  float64   `mapstructure:"tax_rate"`
	Discount float64   `mapstructure:"discount"`
	Notes    string    `mapstructure:"notes"`
	Payment  *payDoc   `mapstructure:"payment_info"`
	Shipping *shipDoc  `mapstructure:"shipping_info"`

	ProductDescription string `mapstructure:"product_description"`
	Currency           string `mapstructure:"currency"`
	LogoPath           string `mapstructure:"logo_path"`
	StampPath          string `mapstructure:"stamp_path"`
}

type partyDoc struct {
	Name         string `mapstructure:"name"`
	Address      string `mapstructure:"address"`
	Phone        string `mapstructure:"phone"`
	Email        string `mapstructure:"email"`
	PlantAddress string `mapstructure:"plant_address"`
	Pin          string `mapstructure:"pin"`
	Other        string `mapstructure:"other"`
}

type headerDoc struct {
	Number   string `mapstructure:"number"`
	Date     string `mapstructure:"date"`
	DueDate  string `mapstructure:"due_date"`
	PONumber string `mapstructure:"po_number"`
}

type itemDoc struct {
	ProductName   string  `mapstructure:"product_name"`
	ProductNumber string  `mapstructure:"product_number"`
	ItemNumber    string  `mapstructure:"item_number"`
	HSCode        string  `mapstructure:"hs_code"`
	Description   string  `mapstructure:"description"`
	Quantity      float64 `mapstructure:"quantity"`
	UnitPrice     float64 `mapstructure:"unit_price"`
	Amount        float64 `mapstructure:"amount"`
}

type payDoc struct {
	Bank    string `mapstructure:"bank"`
	Account string `mapstructure:"account"`
	SWIFT   string `mapstructure:"swift"`
}

type shipDoc struct {
	PortOfShipment     string `mapstructure:"port_of_shipment"`
	CountryOfOrigin    string `mapstructure:"country_of_origin"`
	PortOfDestination  string `mapstructure:"port_of_destination"`
	PlaceOfDestination string `mapstructure:"place_of_destination"`
	ShipmentTerm       string `mapstructure:"shipment_term"`
}

func readDocument(path string) (*invoiceDocument, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("leer documento %s: %w", path, err)
	}
	var doc invoiceDocument
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("interpretar documento %s: %w", path, err)
	}
	return &doc, nil
}

func (d *invoiceDocument) toRequest(defaultCurrency string) *compose.ComposeRequest {
	req := &compose.ComposeRequest{
		Company: entity.Company{
			Name:    d.Company.Name,
			Address: d.Company.Address,
			Phone:   d.Company.Phone,
			Email:   d.Company.Email,
		},
		Customer: entity.Party{
			Name:         d.Customer.Name,
			Address:      d.Customer.Address,
			Phone:        d.Customer.Phone,
			Email:        d.Customer.Email,
			PlantAddress: d.Customer.PlantAddress,
			TaxPIN:       d.Customer.Pin,
			Other:        d.Customer.Other,
		},
		Shipper: entity.Party{
			Name:    d.Shipper.Name,
			Address: d.Shipper.Address,
			Phone:   d.Shipper.Phone,
		},
		Header: entity.InvoiceHeader{
			Number:   d.Invoice.Number,
			Date:     d.Invoice.Date,
			DueDate:  d.Invoice.DueDate,
			PONumber: d.Invoice.PONumber,
		},
		TaxRate:            decimal.NewFromFloat(d.TaxRate),
		Discount:           decimal.NewFromFloat(d.Discount),
		Notes:              d.Notes,
		ProductDescription: d.ProductDescription,
		LogoPath:           d.LogoPath,
		StampPath:          d.StampPath,
		Currency:           d.Currency,
	}
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}

	for _, it := range d.Items {
		req.Items = append(req.Items, entity.LineItem{
			ProductName:   it.ProductName,
			ProductNumber: it.ProductNumber,
			ItemNumber:    it.ItemNumber,
			HSCode:        it.HSCode,
			Description:   it.Description,
			Quantity:      decimal.NewFromFloat(it.Quantity),
			UnitPrice:     decimal.NewFromFloat(it.UnitPrice),
			Amount:        decimal.NewFromFloat(it.Amount),
		})
	}

	if d.Payment != nil {
		req.Payment = &entity.PaymentInfo{
			Bank:    d.Payment.Bank,
			Account: d.Payment.Account,
			SWIFT:   d.Payment.SWIFT,
		}
	}
	if d.Shipping != nil {
		req.Shipping = &entity.ShippingDetails{
			PortOfShipment:     d.Shipping.PortOfShipment,
			CountryOfOrigin:    d.Shipping.CountryOfOrigin,
			PortOfDestination:  d.Shipping.PortOfDestination,
			PlaceOfDestination: d.Shipping.PlaceOfDestination,
			ShipmentTerm:       d.Shipping.ShipmentTerm,
		}
	}

	return req
}
