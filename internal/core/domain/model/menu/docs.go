// Package menu provides the Item aggregate: a dish on the stand's menu together
// with the number of portions still available.
//
// Stock changes only through these operations:
//   - Reserve: a customer adds a line to a pending order; fails without mutation on shortage
//   - Release: a pending order expired and its reservation is handed back
//   - Restock: an admin sets the stock to an absolute value
//   - Reduce: an admin removes portions, never going below zero
package menu
