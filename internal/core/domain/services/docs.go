// Package services provides domain services that work across the menu and
// order aggregates.
//
//   - OrderPricer: prices a finalized order from current menu prices
package services
