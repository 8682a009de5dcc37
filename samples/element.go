package samples

import (
	"fmt"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/query"
)

func hasColor(color string) func(catalog.Product) bool {
	return func(p catalog.Product) bool { return p.Color == color }
}

func hasID(id int) func(catalog.Product) bool {
	return func(p catalog.Product) bool { return p.ProductID == id }
}

// missResult reports a failed lookup. The products stay on display, since
// the lookup never got as far as clearing them. Errors that are not lookup
// failures are returned unchanged.
func missResult(c *Context, err error, text string) (*Result, error) {
	if !errors.IsNotFound(err) && !errors.IsMultipleMatches(err) {
		return nil, err
	}
	return &Result{Products: c.Products, Text: text}, nil
}

// First looks for a color no product has.
func First(c *Context) (*Result, error) {
	p, err := query.From(c.Products).First(hasColor(c.Params.MissingColor))
	if err != nil {
		return missResult(c, err, TextNotFound)
	}
	return &Result{Text: fmt.Sprintf("Found: %s", p)}, nil
}

// FirstOrDefault takes the first product of the configured color.
func FirstOrDefault(c *Context) (*Result, error) {
	return optionalResult(query.From(c.Products).FirstOrDefault(hasColor(c.Params.Color)), TextNotFound), nil
}

// Last takes the last product of the configured color.
func Last(c *Context) (*Result, error) {
	p, err := query.From(c.Products).Last(hasColor(c.Params.Color))
	if err != nil {
		return missResult(c, err, TextNotFound)
	}
	return &Result{Text: fmt.Sprintf("Found: %s", p)}, nil
}

// LastOrDefault takes the last product of the configured color, if any.
func LastOrDefault(c *Context) (*Result, error) {
	return optionalResult(query.From(c.Products).LastOrDefault(hasColor(c.Params.Color)), TextNotFound), nil
}

// Single requires exactly one product with the configured ID.
func Single(c *Context) (*Result, error) {
	p, err := query.From(c.Products).Single(hasID(c.Params.ProductID))
	if err != nil {
		return missResult(c, err, TextNotFoundOrMultiple)
	}
	return &Result{Text: fmt.Sprintf("Found %s", p)}, nil
}

// SingleOrDefault allows no match but still rejects several.
func SingleOrDefault(c *Context) (*Result, error) {
	opt, err := query.From(c.Products).SingleOrDefault(hasID(c.Params.ProductID))
	if err != nil {
		if !errors.IsMultipleMatches(err) {
			return nil, err
		}
		return &Result{Text: TextNotFoundOrMultiple}, nil
	}
	return optionalResult(opt, TextNotFoundOrMultiple), nil
}

// optionalResult renders an OrDefault lookup. Products are cleared either way.
func optionalResult(opt query.Optional[catalog.Product], missing string) *Result {
	if p, ok := opt.Get(); ok {
		return &Result{Text: fmt.Sprintf("Found %s", p)}
	}
	return &Result{Text: missing}
}
