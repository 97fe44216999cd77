// Package queries contains the read side: menu, orders and conversations as
// plain records for transports to render. Handlers read committed data through
// *gorm.DB with SQL, without the writer slot, and never modify state.
package queries
