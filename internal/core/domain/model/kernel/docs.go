// Package kernel holds the value objects shared by the catalog, assembly and
// submission models.
//
//   - UUID: identifier of one placed ingredient instance
//   - Money: non-negative decimal amount used for prices and totals
package kernel
