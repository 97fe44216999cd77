// Package order provides the Order aggregate and its status lifecycle.
//
// A customer assembles an order line by line while it is Pending. Finalize moves
// it to AwaitingPayment; from there staff drive it through the restricted graph
// in Status, or override it with an unrestricted change.
package order
