package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Browse(ctx context.Context, query string) error
	Categories(ctx context.Context) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, idArg string) error
	RemoveFromCart(ctx context.Context, idArg string) error
	SetQuantity(ctx context.Context, idArg, quantityArg string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the MediCart CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help             — show available commands
//	  - browse [query]   — list catalog products, optionally filtered
//	  - categories       — list product categories
//	  - cart             — show the cart
//	  - add <id>         — add a product to the cart
//	  - remove <id>      — remove a product from the cart
//	  - qty <id> <n>     — set line quantity (0 removes)
//	  - clearcart        — empty the cart
//	  - exit | quit      — leave the program
//
//	Not logged in:
//	  - register         — create an account
//	  - login            — authenticate
//
//	Logged in:
//	  - profile          — show the current profile
//	  - update           — update name/email
//	  - checkout         — place an order from the cart
//	  - orders           — list past orders, newest first
//	  - logout           — log out (the cart stays)
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("medicart %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: browse [query], categories, cart, add <id>, remove <id>, qty <id> <n>, clearcart, exit")
			if a.isLoggedIn() {
				printlnFn("Account commands: profile, update, checkout, orders, logout")
			} else {
				printlnFn("Account commands: register, login")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "b", "browse":
			_ = a.Browse(ctx, strings.Join(args, " "))

		case "categories":
			_ = a.Categories(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <id>")
				continue
			}
			_ = a.AddToCart(ctx, args[0])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <id>")
				continue
			}
			_ = a.RemoveFromCart(ctx, args[0])

		case "qty":
			if len(args) < 2 {
				printlnFn("Usage: qty <id> <quantity>")
				continue
			}
			_ = a.SetQuantity(ctx, args[0], args[1])

		case "clearcart":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
