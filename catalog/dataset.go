package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v3"

	"github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/validation"
)

//go:embed seed.yaml
var seedYAML []byte

// Dataset holds the two record collections the samples query.
type Dataset struct {
	Products []Product
	Sales    []SalesOrderDetail
}

// Clone returns a deep copy, so a sample can reassign or mutate its
// collections without affecting other runs.
func (d *Dataset) Clone() *Dataset {
	return &Dataset{
		Products: slices.Clone(d.Products),
		Sales:    slices.Clone(d.Sales),
	}
}

// document is the on-disk shape of a dataset.
type document struct {
	Products []productRecord `yaml:"products"`
	Sales    []salesRecord   `yaml:"sales"`
}

type productRecord struct {
	ProductID    int    `yaml:"product_id" validate:"gt=0"`
	Name         string `yaml:"name" validate:"required,max=50"`
	Color        string `yaml:"color" validate:"max=15"`
	Size         string `yaml:"size" validate:"max=5"`
	StandardCost string `yaml:"standard_cost" validate:"required,numeric"`
	ListPrice    string `yaml:"list_price" validate:"required,numeric"`
}

type salesRecord struct {
	SalesOrderID int    `yaml:"sales_order_id" validate:"gt=0"`
	OrderQty     int16  `yaml:"order_qty" validate:"gte=1"`
	ProductID    int    `yaml:"product_id" validate:"gt=0"`
	UnitPrice    string `yaml:"unit_price" validate:"required,numeric"`
	LineTotal    string `yaml:"line_total" validate:"required,numeric"`
}

// LoadSeed returns the embedded sample dataset.
func LoadSeed() (*Dataset, error) {
	return Parse(seedYAML)
}

// LoadFile reads a dataset from a YAML file.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates a YAML dataset. Every invalid record is
// reported, not just the first.
func Parse(data []byte) (*Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.InvalidFormat("dataset", "YAML with products and sales lists").WithCause(err)
	}

	v := validation.New()
	ds := &Dataset{
		Products: make([]Product, 0, len(doc.Products)),
		Sales:    make([]SalesOrderDetail, 0, len(doc.Sales)),
	}

	ids := make(map[int]bool, len(doc.Products))
	for i, rec := range doc.Products {
		field := fmt.Sprintf("products[%d]", i)
		if err := validation.Validate(rec); err != nil {
			v.Merge(field, err)
			continue
		}
		v.Custom(!ids[rec.ProductID], field+".product_id", fmt.Sprintf("duplicates product %d", rec.ProductID))
		ids[rec.ProductID] = true
		ds.Products = append(ds.Products, rec.toProduct())
	}

	for i, rec := range doc.Sales {
		field := fmt.Sprintf("sales[%d]", i)
		if err := validation.Validate(rec); err != nil {
			v.Merge(field, err)
			continue
		}
		v.Custom(ids[rec.ProductID], field+".product_id", fmt.Sprintf("references unknown product %d", rec.ProductID))
		ds.Sales = append(ds.Sales, rec.toSalesOrderDetail())
	}

	if appErr := v.Validate(); appErr != nil {
		return nil, appErr
	}
	return ds, nil
}

// The string fields have passed the numeric tag, so parsing cannot fail.
func (r productRecord) toProduct() Product {
	return Product{
		ProductID:    r.ProductID,
		Name:         r.Name,
		Color:        r.Color,
		Size:         r.Size,
		StandardCost: decimal.RequireFromString(r.StandardCost),
		ListPrice:    decimal.RequireFromString(r.ListPrice),
	}
}

func (r salesRecord) toSalesOrderDetail() SalesOrderDetail {
	return SalesOrderDetail{
		SalesOrderID: r.SalesOrderID,
		OrderQty:     r.OrderQty,
		ProductID:    r.ProductID,
		UnitPrice:    decimal.RequireFromString(r.UnitPrice),
		LineTotal:    decimal.RequireFromString(r.LineTotal),
	}
}
