package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bioadmin/internal/client/api"
	"github.com/dmitrijs2005/bioadmin/internal/common"
)

// Login prompts for operator credentials and authenticates. The raw password
// buffer is wiped before returning, whatever the outcome.
func (a *App) Login(ctx context.Context) error {
	loginID, err := GetSimpleText(a.reader, "Enter login id", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return err
	}

	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, loginID, password); err != nil {
		var ae *api.AuthError
		if errors.As(err, &ae) && ae.Reason == api.AuthMissingToken {
			fmt.Fprintln(a.out, "Login looked successful but the server issued no session token")
		} else {
			fmt.Fprintln(a.out, "Login unsuccessful:", err)
		}
		a.operatorID = ""
		return err
	}

	a.operatorID = loginID
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout drops the session. Subsequent directory commands require a new login.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.operatorID = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
