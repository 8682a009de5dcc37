package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is one catalog item.
type Product struct {
	ProductID    int
	Name         string
	Color        string
	Size         string
	StandardCost decimal.Decimal
	ListPrice    decimal.Decimal

	// Computed by the for-each samples; zero until assigned.
	NameLength int
	TotalSales decimal.Decimal
}

// String renders the product as a short multi-line block.
func (p Product) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  ID: %d\n", p.Name, p.ProductID)
	fmt.Fprintf(&sb, "   Color: %s   Size: %s\n", orNA(p.Color), orNA(p.Size))
	fmt.Fprintf(&sb, "   Cost: %s   Price: %s\n", FormatMoney(p.StandardCost), FormatMoney(p.ListPrice))
	if p.NameLength > 0 {
		fmt.Fprintf(&sb, "   Name Length: %d\n", p.NameLength)
	}
	if !p.TotalSales.IsZero() {
		fmt.Fprintf(&sb, "   Total Sales: %s\n", FormatMoney(p.TotalSales))
	}
	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
