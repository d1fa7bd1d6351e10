// Package models defines the domain records of the MediCart client:
// accounts, the password-stripped profile exposed to callers, catalog
// products, cart lines, and immutable order snapshots.
package models

import "time"

// Account is a registered user as stored in the account registry.
// The registry is its exclusive owner; everything outside it only ever
// sees the password-stripped Profile projection.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile returns the password-stripped projection of the account.
func (a Account) Profile() Profile {
	return Profile{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// Profile is the view of an account held by the session manager and shown
// to the user. It never carries credential material.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is a read-only catalog item sourced from the remote listing
// endpoint. It is never persisted on its own, only transiently inside
// cart lines and order snapshots.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
}

// CartLine is one product in the active cart together with its quantity.
// Invariant: quantity is always >= 1; a line that would drop to zero is
// removed instead.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Order is an immutable checkout record: a snapshot of the cart lines at
// checkout time. Orders are append-only and never mutated or deleted.
type Order struct {
	ID        string     `json:"id"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
	UserID    string     `json:"user_id"`
}
