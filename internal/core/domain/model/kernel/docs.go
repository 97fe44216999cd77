// Package kernel holds the value objects shared by the menu, order and
// conversation aggregates.
//
//   - ID: a positive row identifier assigned by the store
//   - Money: a non-negative decimal amount; prices and totals never pass through float64
//   - Quantity: a positive number of portions on an order line
package kernel
