package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and authenticates. After a successful
// login the server collections are fetched immediately so the rollup is
// ready to display.
func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)

	if err := a.data.Refresh(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not refresh data: %s\n", err.Error())
	}
}

// Register creates an account; like the original app, a successful
// registration logs the user straight in.
func (a *App) Register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user, err := a.session.Register(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", user.Email)
}

// Logout resets the session and all derived data.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}
