package domain

import "strings"

// Product is a catalog entry. From the cart's perspective products are
// immutable: line items embed a value copy taken at add time, so later catalog
// changes never affect an existing cart.
type Product struct {
	ID        string  `json:"_id" bson:"_id"`
	Name      string  `json:"name" bson:"name"`
	Category  string  `json:"category" bson:"category"`
	Cost      float64 `json:"cost" bson:"cost"`
	Rating    int     `json:"rating" bson:"rating"`
	ImageLink string  `json:"image" bson:"image"`
}

// SameID compares two product identifiers by value. Identifiers may arrive as
// ObjectId hex from storage or as raw strings from the transport layer, so the
// comparison trims whitespace and ignores case to avoid false negatives.
func SameID(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
