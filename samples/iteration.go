package samples

import (
	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/query"
)

// ForEach stores each product's name length on the product itself.
func ForEach(c *Context) (*Result, error) {
	query.ForEachRef(c.Products, func(p *catalog.Product) {
		p.NameLength = len(p.Name)
	})
	return listResult(c.Products), nil
}

// ForEachCallingMethod stores each product's total sales on the product.
func ForEachCallingMethod(c *Context) (*Result, error) {
	query.ForEachRef(c.Products, func(p *catalog.Product) {
		p.TotalSales = catalog.SalesForProduct(c.Sales, p.ProductID)
	})
	return listResult(c.Products), nil
}
