package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/bioadmin/internal/client/api"
)

// Users lists one page of the directory. An optional first argument is the
// page offset: "users 100" fetches the page starting at the 100th user.
func (a *App) Users(ctx context.Context, args []string) error {
	offset := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			fmt.Fprintln(a.out, "Usage: users [offset]")
			return nil
		}
		offset = n
	}

	res, err := a.directory.List(ctx, 0, 0, offset)
	if err != nil {
		a.reportDirectoryError(err)
		return err
	}

	for _, u := range res.Rows {
		if u.Name != "" {
			fmt.Fprintf(a.out, "%s\t%s\n", u.UserID, u.Name)
		} else {
			fmt.Fprintln(a.out, u.UserID)
		}
	}
	fmt.Fprintf(a.out, "Showing %d of %d users (offset %d)\n", len(res.Rows), res.Total, offset)
	return nil
}

// reportDirectoryError prints a user-facing message for a failed directory
// command. Session expiry gets an explicit hint to log in again.
func (a *App) reportDirectoryError(err error) {
	switch {
	case errors.Is(err, api.ErrSessionExpired):
		a.operatorID = ""
		fmt.Fprintln(a.out, "Session expired, please login again")
	case errors.Is(err, api.ErrNotAuthenticated):
		fmt.Fprintln(a.out, "Not logged in, please login first")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
