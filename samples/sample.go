package samples

import (
	"slices"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/config"
	"github.com/kbukum/querykit/errors"
)

// Result texts for failed element lookups.
const (
	TextNotFound           = "Not Found"
	TextNotFoundOrMultiple = "Not Found or multiple elements found"
)

// Context is the working state handed to a sample.
type Context struct {
	Products []catalog.Product
	Sales    []catalog.SalesOrderDetail
	Params   config.SamplesConfig
}

// Result is what a sample leaves behind for display: the remaining
// products, any extra output lines, and a summary text.
type Result struct {
	Sample   string
	RunID    string
	Products []catalog.Product
	Lines    []string
	Text     string
}

// Count is the number of records the result carries.
func (r *Result) Count() int {
	return len(r.Products) + len(r.Lines)
}

// Sample is one named query demonstration.
type Sample struct {
	Name        string
	Description string
	Run         func(*Context) (*Result, error)
}

var registry = []Sample{
	{"get-all-looping", "Copy every product with a plain loop", GetAllLooping},
	{"get-all", "Copy every product with an identity Select", GetAll},
	{"get-single-column", "Select only the product names", GetSingleColumn},
	{"get-specific-columns", "Project products onto ID, Name and Size", GetSpecificColumns},
	{"anonymous-class", "Project products onto an ad-hoc struct", AnonymousClass},
	{"order-by", "Order products by name", OrderBy},
	{"order-by-descending", "Order products by name, descending", OrderByDescending},
	{"order-by-two-fields", "Order products by color descending, then name", OrderByTwoFields},
	{"where-expression", "Keep products whose name starts with the search prefix", WhereExpression},
	{"where-two-fields", "Filter on name prefix and minimum standard cost", WhereTwoFields},
	{"where-extension-method", "Filter by color through a reusable filter", WhereExtensionMethod},
	{"first", "First product of a color that does not exist", First},
	{"first-or-default", "First product of the configured color, if any", FirstOrDefault},
	{"last", "Last product of the configured color", Last},
	{"last-or-default", "Last product of the configured color, if any", LastOrDefault},
	{"single", "The one product with the configured ID", Single},
	{"single-or-default", "The one product with the configured ID, if any", SingleOrDefault},
	{"for-each", "Assign each product its name length", ForEach},
	{"for-each-calling-method", "Assign each product its total sales", ForEachCallingMethod},
	{"take", "First products by name", Take},
	{"take-while", "Products by name while the name has the prefix", TakeWhile},
	{"skip", "Products by name after skipping some", Skip},
	{"skip-while", "Products by name once the prefix stops matching", SkipWhile},
	{"distinct", "Distinct product colors", Distinct},
}

// All returns every sample in presentation order.
func All() []Sample {
	return slices.Clone(registry)
}

// Names returns the sample names in presentation order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a sample by name.
func Lookup(name string) (Sample, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return Sample{}, errors.NotFound("sample").WithDetail("name", name)
}
