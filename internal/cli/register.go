package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/services"
	"github.com/dmitrijs2005/userregistry/internal/style"
	"github.com/dmitrijs2005/userregistry/internal/validation"
)

// Register prompts for every field of a new user and stores it.
//
// Validation failures are listed per field and returned as
// validation.Errors. The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	var in services.RegisterInput

	prompts := []struct {
		text string
		dst  *string
	}{
		{"Enter your first name", &in.FirstName},
		{"Enter your last name", &in.LastName},
		{"Enter your identification number", &in.Identification},
		{"Enter your age", &in.Age},
		{"Enter an email address", &in.Email},
	}
	for _, p := range prompts {
		v, err := GetRawText(a.reader, p.text, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := a.password("Enter a password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	in.Password = password

	u, err := a.userService.Register(ctx, in)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			a.printValidationErrors(verrs)
		} else {
			a.printFailure(err)
		}
		return err
	}

	fmt.Fprintln(a.out, style.SuccessPrefix, "User registered successfully.")
	fmt.Fprintln(a.out, "User JSON:")
	a.printUserJSON(u)
	return nil
}
