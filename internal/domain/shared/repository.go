package shared

// Filter represents query filter options. Limit and Offset follow the
// storefront convention: out-of-range values clamp to defaults instead of
// producing an error.
type Filter struct {
	Limit  int
	Offset int
	Search string
}

// DefaultListLimit is the page size used when the caller supplies none.
const DefaultListLimit = 50

// Clamp normalizes Limit and Offset, replacing non-positive or oversized
// values with the defaults rather than rejecting the request.
func (f *Filter) Clamp() {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = DefaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
