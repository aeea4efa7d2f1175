package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/userregistry/internal/logging"
	"github.com/dmitrijs2005/userregistry/internal/services"
)

// App is one interactive session: where input comes from, where output goes
// and which service executes the operations.
type App struct {
	userService services.UserService
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	// interactive is true when input is a terminal; passwords are then read
	// without echo.
	interactive bool
}

// NewApp builds a session reading from in and writing to out.
func NewApp(us services.UserService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		userService: us,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: isTerminal(in),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run starts the menu loop and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.log.Debug(ctx, "session started")
	runREPL(ctx, a, a.reader, a.out)
	a.log.Debug(ctx, "session finished")
}
