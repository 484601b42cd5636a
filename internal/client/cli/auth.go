package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hearttrack/internal/common"
)

// getSimpleText, getInt and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getInt        = GetInt
	getPassword   = GetPassword
)

// Register prompts for email, password and role and creates the account in
// this session. It does not log in.
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

	role, err := getSimpleText(a.reader, "Role (patient/admin, empty for patient)", a.out)
	if err != nil {
		return err
	}

	u, err := a.api.Register(ctx, email, string(password), role)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s as %s (id %d). You can now log in.\n", u.Email, u.Role, u.ID)
	return nil
}

// Login prompts for credentials and, on success, remembers the identity
// for the prompt and the help text.
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

	id, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.identity = id
	fmt.Fprintf(a.out, "Welcome, %s!\n", id.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	a.identity = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
