package samples

import (
	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/query"
)

// OrderBy sorts products by name.
func OrderBy(c *Context) (*Result, error) {
	return listResult(catalog.ByName(query.From(c.Products)).ToSlice()), nil
}

// OrderByDescending sorts products by name, last first.
func OrderByDescending(c *Context) (*Result, error) {
	sorted := query.OrderByDescending(query.From(c.Products), func(p catalog.Product) string { return p.Name })
	return listResult(sorted.ToSlice()), nil
}

// OrderByTwoFields sorts by color descending, breaking ties by name.
func OrderByTwoFields(c *Context) (*Result, error) {
	sorted := query.OrderByDescending(query.From(c.Products), func(p catalog.Product) string { return p.Color }).
		ThenBy(query.Asc(func(p catalog.Product) string { return p.Name }))
	return listResult(sorted.ToSlice()), nil
}
