package samples

import (
	"fmt"
	"strings"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/query"
)

func byName(c *Context) *query.Ordered[catalog.Product] {
	return catalog.ByName(query.From(c.Products))
}

func namePrefixed(prefix string) func(catalog.Product) bool {
	return func(p catalog.Product) bool { return strings.HasPrefix(p.Name, prefix) }
}

// Take keeps the first products by name.
func Take(c *Context) (*Result, error) {
	return listResult(byName(c).Take(c.Params.Take).ToSlice()), nil
}

// TakeWhile keeps products by name until one lacks the prefix.
func TakeWhile(c *Context) (*Result, error) {
	return listResult(byName(c).TakeWhile(namePrefixed(c.Params.WhilePrefix)).ToSlice()), nil
}

// Skip drops the first products by name.
func Skip(c *Context) (*Result, error) {
	return listResult(byName(c).Skip(c.Params.Skip).ToSlice()), nil
}

// SkipWhile drops products by name until one lacks the prefix.
func SkipWhile(c *Context) (*Result, error) {
	return listResult(byName(c).SkipWhile(namePrefixed(c.Params.WhilePrefix)).ToSlice()), nil
}

// Distinct lists each product color once, in first-seen order.
func Distinct(c *Context) (*Result, error) {
	colors := query.Distinct(query.Select(query.From(c.Products), func(p catalog.Product) string { return p.Color })).ToSlice()

	lines := make([]string, len(colors))
	for i, color := range colors {
		lines[i] = fmt.Sprintf("Color: %s", color)
	}
	return &Result{Lines: lines, Text: fmt.Sprintf("Total Colors: %d", len(colors))}, nil
}
