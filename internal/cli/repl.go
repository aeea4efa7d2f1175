package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/userregistry/internal/style"
)

const menuText = `Select an option:
1. Register user
2. Search user
3. Delete user
4. Exit`

// execIface is the command surface the menu loop needs. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	Search(ctx context.Context) error
	Delete(ctx context.Context) error
}

// runREPL shows the menu, reads a choice and dispatches it until the user
// picks Exit or input ends.
//
// Accepted choices are the option numbers or their names (register, search,
// delete, exit/quit). Errors returned by handlers are ignored here: handlers
// report to the user themselves and the loop always returns to the menu.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		choice, err := GetSimpleText(reader, menuText, w)
		if err != nil {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Bye!")
			return
		}

		switch strings.ToLower(choice) {
		case "1", "register":
			_ = a.Register(ctx)

		case "2", "search":
			_ = a.Search(ctx)

		case "3", "delete":
			_ = a.Delete(ctx)

		case "4", "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, style.WarningPrefix, "Invalid option, please try again.")
		}
	}
}
