// Package engine answers read-only questions about a product collection:
// lookups, category and price filters, sorting and free-text search.
//
// Every function is pure. Inputs are never modified and results are new
// slices that share the *domain.Product records with the input, which are
// treated as immutable. No function returns an error for a well-formed
// call: misses produce empty results.
package engine
