package assembly

// OrderRequest is the ordered list of catalog ids submitted for one order:
// base, every filling in assembly order, base again. The base id appears at
// both ends because the bun is served as a top and a bottom half.
type OrderRequest struct {
	ingredientIDs []string
}

// IngredientIDs returns a copy of the ids in submission order.
func (r OrderRequest) IngredientIDs() []string {
	ids := make([]string, len(r.ingredientIDs))
	copy(ids, r.ingredientIDs)
	return ids
}

// Len is the number of ids, always fillings + 2 for a request built by an Assembly.
func (r OrderRequest) Len() int {
	return len(r.ingredientIDs)
}
