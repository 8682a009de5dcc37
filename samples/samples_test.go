package samples

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/config"
	"github.com/kbukum/querykit/errors"
)

func seedContext(t *testing.T) *Context {
	t.Helper()
	ds, err := catalog.LoadSeed()
	if err != nil {
		t.Fatalf("LoadSeed() error = %v", err)
	}
	return &Context{Products: ds.Products, Sales: ds.Sales, Params: config.DefaultSamplesConfig()}
}

func run(t *testing.T, fn func(*Context) (*Result, error)) *Result {
	t.Helper()
	res, err := fn(seedContext(t))
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	return res
}

func productNames(ps []catalog.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func productIDs(ps []catalog.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ProductID
	}
	return out
}

func TestRegistry(t *testing.T) {
	want := []string{
		"get-all-looping", "get-all", "get-single-column", "get-specific-columns", "anonymous-class",
		"order-by", "order-by-descending", "order-by-two-fields",
		"where-expression", "where-two-fields", "where-extension-method",
		"first", "first-or-default", "last", "last-or-default", "single", "single-or-default",
		"for-each", "for-each-calling-method",
		"take", "take-while", "skip", "skip-while", "distinct",
	}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	for _, s := range All() {
		if s.Description == "" || s.Run == nil {
			t.Errorf("sample %s is incomplete", s.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup("distinct")
	if err != nil || s.Name != "distinct" {
		t.Fatalf("Lookup(distinct) = %+v, %v", s, err)
	}
	_, err = Lookup("nope")
	if !errors.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	appErr, _ := errors.AsAppError(err)
	if appErr.Details["name"] != "nope" {
		t.Errorf("expected the name in details, got %v", appErr.Details)
	}
}

func TestGetAll(t *testing.T) {
	for _, fn := range []func(*Context) (*Result, error){GetAllLooping, GetAll} {
		res := run(t, fn)
		if res.Text != "Total Products: 31" || len(res.Products) != 31 {
			t.Errorf("unexpected result: %q with %d products", res.Text, len(res.Products))
		}
	}
}

func TestGetSingleColumn(t *testing.T) {
	res := run(t, GetSingleColumn)
	if len(res.Products) != 0 {
		t.Error("products should be cleared")
	}
	if len(res.Lines) != 31 || res.Lines[0] != "HL Road Frame - Black, 58" {
		t.Errorf("unexpected names: %v", res.Lines)
	}
	if res.Text != "Total Products: 31" {
		t.Errorf("unexpected text %q", res.Text)
	}
}

func TestGetSpecificColumns(t *testing.T) {
	res := run(t, GetSpecificColumns)
	if len(res.Products) != 31 {
		t.Fatalf("expected 31 products, got %d", len(res.Products))
	}
	p := res.Products[1]
	if p.ProductID != 706 || p.Name != "HL Road Frame - Red, 58" || p.Size != "58" {
		t.Errorf("projected fields lost: %+v", p)
	}
	if p.Color != "" || !p.ListPrice.IsZero() {
		t.Errorf("unprojected fields should be zero: %+v", p)
	}
}

func TestAnonymousClass(t *testing.T) {
	res := run(t, AnonymousClass)
	if len(res.Lines) != 31*3 {
		t.Fatalf("expected 3 lines per product, got %d", len(res.Lines))
	}
	want := []string{"Product ID: 680", "   Product Name: HL Road Frame - Black, 58", "   Product Size: 58"}
	if diff := cmp.Diff(want, res.Lines[:3]); diff != "" {
		t.Errorf("first product lines mismatch (-want +got):\n%s", diff)
	}
	if len(res.Products) != 0 || res.Text != "" {
		t.Errorf("expected only lines, got %+v", res)
	}
}

func TestOrdering(t *testing.T) {
	res := run(t, OrderBy)
	names := productNames(res.Products)
	if !slices.IsSorted(names) || names[0] != "AWC Logo Cap" {
		t.Errorf("not sorted by name: %v", names[:3])
	}

	res = run(t, OrderByDescending)
	if res.Products[0].Name != "Water Bottle - 30 oz." {
		t.Errorf("expected Water Bottle first, got %s", res.Products[0].Name)
	}

	res = run(t, OrderByTwoFields)
	first, last := res.Products[0], res.Products[len(res.Products)-1]
	if first.Color != "Yellow" || first.Name != "Road-550-W Yellow, 38" {
		t.Errorf("unexpected first product %s / %s", first.Color, first.Name)
	}
	if last.Color != "" || last.Name != "Water Bottle - 30 oz." {
		t.Errorf("unexpected last product %q / %s", last.Color, last.Name)
	}
	if res.Text != "Total Products: 31" {
		t.Errorf("unexpected text %q", res.Text)
	}
}

func TestFiltering(t *testing.T) {
	res := run(t, WhereExpression)
	if len(res.Products) != 6 || res.Text != "Total Products: 6" {
		t.Errorf("expected 6 products starting with L, got %v", productNames(res.Products))
	}

	res = run(t, WhereTwoFields)
	if diff := cmp.Diff([]int{722, 725}, productIDs(res.Products)); diff != "" {
		t.Errorf("WhereTwoFields mismatch (-want +got):\n%s", diff)
	}

	res = run(t, WhereExtensionMethod)
	if diff := cmp.Diff([]int{706, 707, 717, 718, 725, 749}, productIDs(res.Products)); diff != "" {
		t.Errorf("WhereExtensionMethod mismatch (-want +got):\n%s", diff)
	}
}

func TestWhereTwoFields_UsesConfiguredCost(t *testing.T) {
	c := seedContext(t)
	c.Params.MinCost = "200"
	res, err := WhereTwoFields(c)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{722}, productIDs(res.Products)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFirst_NotFoundKeepsProducts(t *testing.T) {
	res := run(t, First)
	if res.Text != TextNotFound {
		t.Errorf("expected %q, got %q", TextNotFound, res.Text)
	}
	if len(res.Products) != 31 {
		t.Errorf("products should stay on display after a miss, got %d", len(res.Products))
	}
}

func TestFirst_Found(t *testing.T) {
	c := seedContext(t)
	c.Params.MissingColor = "Silver"
	res, err := First(c)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Text, "Found: HL Mountain Frame - Silver, 42  ID: 739") {
		t.Errorf("unexpected text %q", res.Text)
	}
	if len(res.Products) != 0 {
		t.Error("products should be cleared after a hit")
	}
}

func TestFirstAndLastOrDefault(t *testing.T) {
	res := run(t, FirstOrDefault)
	if !strings.HasPrefix(res.Text, "Found HL Road Frame - Red, 58  ID: 706") {
		t.Errorf("unexpected first text %q", res.Text)
	}
	res = run(t, LastOrDefault)
	if !strings.HasPrefix(res.Text, "Found Road-150 Red, 62  ID: 749") {
		t.Errorf("unexpected last text %q", res.Text)
	}

	c := seedContext(t)
	c.Params.Color = "Purple"
	res, _ = FirstOrDefault(c)
	if res.Text != TextNotFound || len(res.Products) != 0 {
		t.Errorf("expected cleared Not Found, got %+v", res)
	}
}

func TestLast(t *testing.T) {
	res := run(t, Last)
	if !strings.HasPrefix(res.Text, "Found: Road-150 Red, 62  ID: 749") {
		t.Errorf("unexpected text %q", res.Text)
	}

	c := seedContext(t)
	c.Params.Color = "Purple"
	res, err := Last(c)
	if err != nil || res.Text != TextNotFound {
		t.Errorf("expected Not Found, got %+v, %v", res, err)
	}
}

func TestSingle(t *testing.T) {
	res := run(t, Single)
	if !strings.HasPrefix(res.Text, "Found HL Road Frame - Red, 58  ID: 706") {
		t.Errorf("unexpected text %q", res.Text)
	}

	c := seedContext(t)
	c.Products = append(c.Products, c.Products[1])
	res, err := Single(c)
	if err != nil || res.Text != TextNotFoundOrMultiple {
		t.Errorf("expected multiple-match text, got %+v, %v", res, err)
	}

	c = seedContext(t)
	c.Params.ProductID = 1
	res, err = Single(c)
	if err != nil || res.Text != TextNotFoundOrMultiple {
		t.Errorf("expected not-found text, got %+v, %v", res, err)
	}
}

func TestSingleOrDefault(t *testing.T) {
	res := run(t, SingleOrDefault)
	if !strings.HasPrefix(res.Text, "Found HL Road Frame - Red, 58") {
		t.Errorf("unexpected text %q", res.Text)
	}

	c := seedContext(t)
	c.Params.ProductID = 1
	if res, _ := SingleOrDefault(c); res.Text != TextNotFoundOrMultiple {
		t.Errorf("expected absent text, got %q", res.Text)
	}

	c = seedContext(t)
	c.Products = append(c.Products, c.Products[1])
	res, err := SingleOrDefault(c)
	if err != nil || res.Text != TextNotFoundOrMultiple || len(res.Products) != 0 {
		t.Errorf("expected cleared multiple-match text, got %+v, %v", res, err)
	}
}

func TestForEach(t *testing.T) {
	res := run(t, ForEach)
	for _, p := range res.Products {
		if p.NameLength != len(p.Name) {
			t.Errorf("%s: NameLength = %d, want %d", p.Name, p.NameLength, len(p.Name))
		}
	}
	if res.Text != "Total Products: 31" {
		t.Errorf("unexpected text %q", res.Text)
	}
}

func TestForEachCallingMethod(t *testing.T) {
	res := run(t, ForEachCallingMethod)
	totals := make(map[int]decimal.Decimal)
	for _, p := range res.Products {
		totals[p.ProductID] = p.TotalSales
	}
	if !totals[706].Equal(decimal.RequireFromString("3435.60")) {
		t.Errorf("expected 3435.60 for 706, got %s", totals[706])
	}
	if !totals[680].IsZero() {
		t.Errorf("expected zero for 680, got %s", totals[680])
	}
}

func TestPartitioning(t *testing.T) {
	res := run(t, Take)
	want := []string{"AWC Logo Cap", "All-Purpose Bike Stand", "Bike Wash - Dissolver", "Classic Vest, M", "HL Mountain Frame - Silver, 42"}
	if diff := cmp.Diff(want, productNames(res.Products)); diff != "" {
		t.Errorf("Take mismatch (-want +got):\n%s", diff)
	}

	res = run(t, TakeWhile)
	if diff := cmp.Diff(want[:2], productNames(res.Products)); diff != "" {
		t.Errorf("TakeWhile mismatch (-want +got):\n%s", diff)
	}

	res = run(t, Skip)
	if len(res.Products) != 11 || res.Products[0].Name != "Mountain-100 Black, 38" {
		t.Errorf("Skip: got %d products starting %v", len(res.Products), productNames(res.Products[:1]))
	}

	res = run(t, SkipWhile)
	if len(res.Products) != 29 || res.Products[0].Name != "Bike Wash - Dissolver" {
		t.Errorf("SkipWhile: got %d products starting %v", len(res.Products), productNames(res.Products[:1]))
	}
}

func TestDistinct(t *testing.T) {
	res := run(t, Distinct)
	want := []string{
		"Color: Black", "Color: Red", "Color: White", "Color: Blue",
		"Color: Multi", "Color: Silver", "Color: Yellow", "Color: ",
	}
	if diff := cmp.Diff(want, res.Lines); diff != "" {
		t.Errorf("Distinct mismatch (-want +got):\n%s", diff)
	}
	if res.Text != "Total Colors: 8" || len(res.Products) != 0 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestResultCount(t *testing.T) {
	r := &Result{Products: make([]catalog.Product, 2), Lines: []string{"a"}}
	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}
}
