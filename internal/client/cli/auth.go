package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophmatch/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates an account. The
// new account is logged in right away.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.api.Register(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered, your id is %s\n", a.api.Session().UserID)
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.api.Login(ctx, email, password); err != nil {
		return err
	}

	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Logged in as %s\n", a.api.Session().UserID)
	return nil
}

// Refresh rotates the token pair on demand.
func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.api.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Session refreshed")
	return nil
}

// Logout ends the server session. The local session is dropped either way.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
