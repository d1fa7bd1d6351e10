package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/medicart/internal/client/services"
	"github.com/dmitrijs2005/medicart/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a name, email and password and attempts to
// create a new account. On success a session is started immediately, so the
// user does not have to log in after registering.
//
// The password byte slice is securely wiped before returning. A duplicate
// email is reported to the user and is not an error of this method.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.accounts.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			printlnFn("An account with this email already exists")
			return nil
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	if err := a.session.Start(ctx, *profile); err != nil {
		a.log.Error(ctx, "failed to start session", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", profile.Name))
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session is persisted so it survives a restart. Invalid
// credentials are reported to the user; a missing account and a wrong
// password produce the same message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.accounts.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	if err := a.session.Start(ctx, *profile); err != nil {
		a.log.Error(ctx, "failed to start session", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", profile.Name))
	return nil
}

// Logout ends the current session. The cart is kept: it belongs to the
// device, not to the account.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.End(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Profile shows the current user's profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.session.RequireCurrent()
	if err != nil {
		printlnFn("Please login first")
		return nil
	}

	printlnFn("Name:  " + p.Name)
	printlnFn("Email: " + p.Email)
	printlnFn("Since: " + p.CreatedAt.Format("2006-01-02"))
	return nil
}

// UpdateProfile prompts for a new name and email (empty keeps the stored
// value), merges them into the account registry and refreshes the session
// with the updated profile.
func (a *App) UpdateProfile(ctx context.Context) error {
	p, err := a.session.RequireCurrent()
	if err != nil {
		printlnFn("Please login first")
		return nil
	}

	name, err := getSimpleText(a.reader, "New name (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}

	update := services.ProfileUpdate{}
	if name != "" {
		update.Name = &name
	}
	if email != "" {
		update.Email = &email
	}

	updated, err := a.accounts.UpdateProfile(ctx, p.ID, update)
	if err != nil {
		a.log.Error(ctx, "profile update failed", "error", err)
		return err
	}

	if err := a.session.Start(ctx, *updated); err != nil {
		a.log.Error(ctx, "failed to refresh session", "error", err)
		return err
	}

	printlnFn("Profile updated")
	return nil
}
