package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/style"
)

// Search prompts for an identification and shows the matching user.
func (a *App) Search(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter the identification of the user to search for", a.out)
	if err != nil {
		return err
	}
	return a.SearchByID(ctx, id)
}

// SearchByID shows the first user with the given identification. A missing
// user is reported as a normal outcome and common.ErrorNotFound is returned.
func (a *App) SearchByID(ctx context.Context, id string) error {
	u, err := a.userService.Search(ctx, id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, style.WarningPrefix, "No user found with that identification.")
		return err
	case err != nil:
		a.printFailure(err)
		return err
	}

	a.printUserDetails(u)
	return nil
}
