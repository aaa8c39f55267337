package cli

import (
	"context"
	"fmt"
)

func (a *App) readCredentials() (string, string, error) {
	email, err := GetSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// Signup registers a new account.
func (a *App) Signup(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	resp, err := a.api.Signup(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Signup unsuccessful: %v\n", err)
		return err
	}

	a.report(resp)
	return nil
}

// Login verifies credentials. On success the email is shown in the prompt.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return err
	}

	if resp.OK() {
		a.email = email
		fmt.Fprintln(a.out, "Login successful")
	}
	a.report(resp)
	return nil
}

// Translate asks for text and a target language code.
func (a *App) Translate(ctx context.Context) error {
	text, err := GetSimpleText(a.reader, "-Enter text", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	target, err := GetSimpleText(a.reader, "-Enter target language (e.g. es)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	resp, err := a.api.Translate(ctx, text, target)
	if err != nil {
		fmt.Fprintf(a.out, "Translation unsuccessful: %v\n", err)
		return err
	}

	a.report(resp)
	return nil
}
