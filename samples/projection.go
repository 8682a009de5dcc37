package samples

import (
	"fmt"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/query"
)

func totalProducts(n int) string {
	return fmt.Sprintf("Total Products: %d", n)
}

// listResult keeps products on display and reports how many there are.
func listResult(products []catalog.Product) *Result {
	return &Result{Products: products, Text: totalProducts(len(products))}
}

// GetAllLooping copies the products without the query engine.
func GetAllLooping(c *Context) (*Result, error) {
	list := make([]catalog.Product, 0, len(c.Products))
	for _, p := range c.Products {
		list = append(list, p)
	}
	return &Result{Products: c.Products, Text: totalProducts(len(list))}, nil
}

// GetAll copies the products through an identity projection.
func GetAll(c *Context) (*Result, error) {
	list := query.Select(query.From(c.Products), func(p catalog.Product) catalog.Product { return p }).ToSlice()
	return &Result{Products: c.Products, Text: totalProducts(len(list))}, nil
}

// GetSingleColumn lists product names only.
func GetSingleColumn(c *Context) (*Result, error) {
	names := query.Select(query.From(c.Products), func(p catalog.Product) string { return p.Name }).ToSlice()
	return &Result{Lines: names, Text: totalProducts(len(names))}, nil
}

// GetSpecificColumns replaces the products with copies holding only ID,
// Name and Size.
func GetSpecificColumns(c *Context) (*Result, error) {
	products := query.Select(query.From(c.Products), func(p catalog.Product) catalog.Product {
		return catalog.Product{ProductID: p.ProductID, Name: p.Name, Size: p.Size}
	}).ToSlice()
	return listResult(products), nil
}

// AnonymousClass projects onto a struct local to the sample.
func AnonymousClass(c *Context) (*Result, error) {
	type summary struct {
		Identifier  int
		ProductName string
		ProductSize string
	}
	products := query.Select(query.From(c.Products), func(p catalog.Product) summary {
		return summary{Identifier: p.ProductID, ProductName: p.Name, ProductSize: p.Size}
	})

	var lines []string
	for s := range products.All() {
		lines = append(lines,
			fmt.Sprintf("Product ID: %d", s.Identifier),
			fmt.Sprintf("   Product Name: %s", s.ProductName),
			fmt.Sprintf("   Product Size: %s", s.ProductSize),
		)
	}
	return &Result{Lines: lines}, nil
}
