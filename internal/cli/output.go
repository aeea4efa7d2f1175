package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/models"
	"github.com/dmitrijs2005/userregistry/internal/style"
	"github.com/dmitrijs2005/userregistry/internal/validation"
)

const passwordMask = "********"

// printUserJSON prints u as indented JSON with the password masked.
func (a *App) printUserJSON(u *models.User) {
	masked := *u
	masked.Password = passwordMask

	b, err := json.MarshalIndent(masked, "", "  ")
	if err != nil {
		fmt.Fprintln(a.out, style.ErrorPrefix, err)
		return
	}
	fmt.Fprintln(a.out, string(b))
}

// printUserDetails prints every field except the password.
func (a *App) printUserDetails(u *models.User) {
	fmt.Fprintln(a.out, style.Bold.Render("User found:"))
	fmt.Fprintf(a.out, "First name: %s\n", u.FirstName)
	fmt.Fprintf(a.out, "Last name: %s\n", u.LastName)
	fmt.Fprintf(a.out, "Identification: %s\n", u.Identification)
	fmt.Fprintf(a.out, "Age: %d\n", u.Age)
	fmt.Fprintf(a.out, "Email: %s\n", u.Email)
}

func (a *App) printValidationErrors(errs validation.Errors) {
	fmt.Fprintln(a.out, style.ErrorPrefix, "Validation errors:")
	for _, k := range errs.Keys() {
		fmt.Fprintf(a.out, "  - %s: %s\n", k, errs[k])
	}
}

// printFailure reports a failed operation: a short message for the kind of
// failure followed by the underlying cause.
func (a *App) printFailure(err error) {
	var msg string
	switch {
	case errors.Is(err, common.ErrRead):
		msg = "Could not read the user registry."
	case errors.Is(err, common.ErrWrite):
		msg = "Could not save the user registry."
	default:
		msg = "The operation failed."
	}
	fmt.Fprintln(a.out, style.ErrorPrefix, msg)
	fmt.Fprintln(a.out, "  "+style.Dim.Render(err.Error()))
}
