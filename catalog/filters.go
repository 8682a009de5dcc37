package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kbukum/querykit/query"
)

// ByColor keeps products whose Color equals color.
func ByColor(q *query.Query[Product], color string) *query.Query[Product] {
	return q.Where(func(p Product) bool { return p.Color == color })
}

// NameStartsWith keeps products whose Name begins with prefix.
func NameStartsWith(q *query.Query[Product], prefix string) *query.Query[Product] {
	return q.Where(func(p Product) bool { return strings.HasPrefix(p.Name, prefix) })
}

// CostAbove keeps products whose StandardCost is strictly greater than amount.
func CostAbove(q *query.Query[Product], amount decimal.Decimal) *query.Query[Product] {
	return q.Where(func(p Product) bool { return p.StandardCost.GreaterThan(amount) })
}

// SalesForProduct sums LineTotal over the sales lines for productID.
// It is zero when the product has no sales.
func SalesForProduct(sales []SalesOrderDetail, productID int) decimal.Decimal {
	lines := query.From(sales).Where(func(s SalesOrderDetail) bool { return s.ProductID == productID })
	return query.Aggregate(lines, decimal.Zero, func(total decimal.Decimal, s SalesOrderDetail) decimal.Decimal {
		return total.Add(s.LineTotal)
	})
}

// ByName orders products by Name; used as the default ordering for the
// partitioning samples.
func ByName(q *query.Query[Product]) *query.Ordered[Product] {
	return query.OrderBy(q, func(p Product) string { return p.Name })
}
