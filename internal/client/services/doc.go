// Package services contains the application services of the MediCart
// client: the account registry, the session manager, the cart store, and
// the order ledger with its checkout transaction.
//
// All state lives in the persisted key-value store as whole documents
// (keys "users", "currentUser", "cart", "orders"); every mutation rewrites
// the affected document in full, so a concurrent reader never observes a
// partially-serialized value. The design assumes a single logical client
// actor issuing operations sequentially.
package services
