// Package catalog supplies the product and sales-order records that the
// query samples run against.
//
// Records are loaded from YAML (the embedded seed data or a file), checked
// with struct tags, and converted into typed values. Money fields are
// decimal.Decimal so sums over sales lines are exact.
package catalog
