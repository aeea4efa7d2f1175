package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/userregistry/internal/config"
	"github.com/dmitrijs2005/userregistry/internal/logging"
	"github.com/dmitrijs2005/userregistry/internal/repositories/users"
	"github.com/dmitrijs2005/userregistry/internal/services"
	"github.com/dmitrijs2005/userregistry/internal/style"
)

// rootOptions holds the values bound to the global flags. Only flags the user
// actually set override the loaded configuration.
type rootOptions struct {
	configPath      string
	file            string
	logLevel        string
	logFormat       string
	hashPasswords   bool
	createIfMissing bool
	lockTimeout     time.Duration
}

// reportedError marks an error that a handler has already shown to the user.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// NewRootCmd builds the command tree. Without a subcommand it runs the
// interactive menu.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "userregistry",
		Short: "Manage a small registry of users stored in a JSON file",
		Long: `Register, search and delete users kept in a single JSON document.

Without a subcommand an interactive menu is started:

  1. Register user
  2. Search user
  3. Delete user
  4. Exit

Examples:
  userregistry                          # interactive menu on usuarios.json
  userregistry -f /data/users.json      # use another data file
  userregistry search 1020              # print the user with id 1020
  userregistry delete 1020              # remove the user with id 1020`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON or TOML config file")
	f.StringVarP(&opts.file, "file", "f", config.DefaultFile, "path to the users JSON file")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", logging.FormatText, "log format: text or json")
	f.BoolVar(&opts.hashPasswords, "hash-passwords", false, "store bcrypt hashes instead of plain passwords")
	f.BoolVar(&opts.createIfMissing, "create-if-missing", true, "create an empty users file when it does not exist")
	f.DurationVar(&opts.lockTimeout, "lock-timeout", 5*time.Second, "how long to wait for the users file lock")

	cmd.AddCommand(newSearchCmd(opts), newDeleteCmd(opts))
	return cmd
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <identification>",
		Short: "Show the first user with the given identification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			if err := app.SearchByID(cmd.Context(), args[0]); err != nil {
				return reportedError{err}
			}
			return nil
		},
	}
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <identification>",
		Short: "Delete the first user with the given identification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			if err := app.DeleteByID(cmd.Context(), args[0]); err != nil {
				return reportedError{err}
			}
			return nil
		},
	}
}

// loadConfig merges file/env configuration with explicitly set flags.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("file") {
		cfg.FilePath = o.file
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if fs.Changed("hash-passwords") {
		cfg.HashPasswords = o.hashPasswords
	}
	if fs.Changed("create-if-missing") {
		cfg.CreateIfMissing = o.createIfMissing
	}
	if fs.Changed("lock-timeout") {
		cfg.LockTimeout = o.lockTimeout
	}
	return cfg, nil
}

// newApp wires configuration, logger, store and service into a session
// bound to the command's input and output.
func (o *rootOptions) newApp(cmd *cobra.Command) (*App, error) {
	ctx := cmd.Context()

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	log = log.With("file", cfg.FilePath)

	repo := users.NewJSONRepository(cfg.FilePath, cfg.LockTimeout)
	if cfg.CreateIfMissing {
		created, err := repo.Init(ctx)
		switch {
		case err != nil:
			// operations will surface the same problem to the user
			log.Warn(ctx, "could not initialise users file", "error", err)
		case created:
			log.Info(ctx, "created empty users file")
		}
	}

	us := services.NewUserService(repo, log, services.Options{HashPasswords: cfg.HashPasswords})
	return NewApp(us, log, cmd.InOrStdin(), cmd.OutOrStdout()), nil
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(cmd.ErrOrStderr(), style.ErrorPrefix, err)
		}
		return 1
	}
	return 0
}
