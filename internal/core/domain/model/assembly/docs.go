// Package assembly implements the burger being assembled: one optional base and
// an ordered list of fillings.
//
// The package includes:
//   - Assembly: the aggregate that owns the selection and derives price, counters
//     and the order request from it on every read
//   - SelectedPart: one placed occurrence of a catalog part with its own instance id
//   - OrderRequest: the ordered catalog ids sent to order placement
//
// Key business rules:
//   - At most one base; adding a base replaces the previous one
//   - Fillings keep insertion order, which is also the submission order
//   - Instance ids are unique within an assembly and never reused
//   - Price is 2 × base + Σ fillings, or 0 for an empty assembly
//   - Removal by instance id only targets fillings; the base is only ever replaced
//
// An Assembly is not safe for concurrent use; the owning session serializes access.
package assembly
