package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/style"
)

// Delete prompts for an identification and removes the matching user.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter the identification of the user to delete", a.out)
	if err != nil {
		return err
	}
	return a.DeleteByID(ctx, id)
}

// DeleteByID removes the first user with the given identification.
func (a *App) DeleteByID(ctx context.Context, id string) error {
	err := a.userService.Delete(ctx, id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, style.WarningPrefix, "No user found with that identification to delete.")
		return err
	case err != nil:
		a.printFailure(err)
		return err
	}

	fmt.Fprintln(a.out, style.SuccessPrefix, fmt.Sprintf("User with identification %s deleted successfully.", id))
	return nil
}
