package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SalesOrderDetail is one line item of a sales order.
type SalesOrderDetail struct {
	SalesOrderID int
	OrderQty     int16
	ProductID    int
	UnitPrice    decimal.Decimal
	LineTotal    decimal.Decimal
}

// String renders the line item.
func (s SalesOrderDetail) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Order ID: %d\n", s.SalesOrderID)
	fmt.Fprintf(&sb, "   Product ID: %d   Qty: %d\n", s.ProductID, s.OrderQty)
	fmt.Fprintf(&sb, "   Unit Price: %s   Total: %s\n", FormatMoney(s.UnitPrice), FormatMoney(s.LineTotal))
	return sb.String()
}
