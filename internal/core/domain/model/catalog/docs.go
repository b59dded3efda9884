// Package catalog models the read-only ingredient catalog the constructor picks from.
//
// The package includes:
//   - Part: one catalog ingredient with its price, nutrition and images
//   - Category: base (bun), solid filling (main) or liquid filling (sauce)
//   - Filter: the per-category views the presentation lists
//
// Parts are immutable once built and are shared by pointer between the
// catalog store and every assembly that selected them.
package catalog
