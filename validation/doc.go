// Package validation checks records handed to querykit by a data source.
//
// Struct tag validation covers single records; the Validator collector
// covers checks that span records, such as duplicate keys or dangling
// references.
//
// # Struct Tag Validation
//
//	type productRecord struct {
//	    ProductID int    `yaml:"product_id" validate:"gt=0"`
//	    Name      string `yaml:"name" validate:"required,max=50"`
//	}
//	err := validation.Validate(rec)
//
// # Collected Validation
//
//	v := validation.New()
//	v.Custom(!seen[id], "products[3].product_id", "duplicates an earlier product")
//	err := v.Validate()
package validation
