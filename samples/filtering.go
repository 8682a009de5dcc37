package samples

import (
	"strings"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/query"
)

// WhereExpression keeps products whose name starts with the search prefix.
func WhereExpression(c *Context) (*Result, error) {
	prefix := c.Params.NamePrefix
	products := query.From(c.Products).
		Where(func(p catalog.Product) bool { return strings.HasPrefix(p.Name, prefix) }).
		ToSlice()
	return listResult(products), nil
}

// WhereTwoFields combines the name prefix with a minimum standard cost.
func WhereTwoFields(c *Context) (*Result, error) {
	prefix, cost := c.Params.NamePrefix, c.Params.MinCostAmount()
	products := query.From(c.Products).
		Where(func(p catalog.Product) bool {
			return strings.HasPrefix(p.Name, prefix) && p.StandardCost.GreaterThan(cost)
		}).
		ToSlice()
	return listResult(products), nil
}

// WhereExtensionMethod filters through catalog.ByColor.
func WhereExtensionMethod(c *Context) (*Result, error) {
	return listResult(catalog.ByColor(query.From(c.Products), c.Params.Color).ToSlice()), nil
}
