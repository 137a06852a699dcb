// Package common holds enums shared by configuration, filtering and artifact
// collection. Code for them is generated by go-enum.
package common

// Category of analysis result, encoded in result identifier prefix.
// ENUM(none, circular, multistrand)
type Category int

// Prefix returns identifier prefix results of this category carry.
func (c Category) Prefix() string {
	switch c {
	case CategoryCircular:
		return "circ"
	case CategoryMultistrand:
		return "mult"
	default:
		return ""
	}
}

// Strand of a region or fragment.
// ENUM(+, -)
type Strand string
