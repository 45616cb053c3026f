package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matheus3301/rolodex/internal/app"
	"github.com/matheus3301/rolodex/internal/config"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/prefs"
	"github.com/matheus3301/rolodex/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the persistent flags.
type options struct {
	profile   string
	ephemeral bool
	verbose   bool
	jsonOut   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "rolodexctl",
		Short: "Manage rolodex contacts from the command line",
		Long: `rolodexctl reads and edits the contacts of a rolodex profile.

The profile is locked while a command runs, so it fails if the TUI
has the same profile open.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "", "profile name (overrides ROLODEX_PROFILE and config)")
	root.PersistentFlags().BoolVar(&opts.ephemeral, "ephemeral", false, "use an in-memory profile that is discarded on exit")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "mirror the log to stderr")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "output in JSON format")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newEditCmd(opts),
		newFavCmd(opts),
		newRmCmd(opts),
		newThemeCmd(opts),
		newInfoCmd(opts),
		newProfilesCmd(opts),
	)
	return root
}

// session is an open profile.
type session struct {
	name     string
	cfg      *config.Config
	contacts *contact.Store
	prefs    *prefs.Store
	db       *store.DB // nil for ephemeral profiles
}

// withProfile opens the selected profile, runs fn and closes it again.
func withProfile(cmd *cobra.Command, opts *options, fn func(s *session) error) error {
	p, err := app.Resolve(opts.profile, opts.ephemeral)
	if err != nil {
		return err
	}
	if opts.verbose {
		p.Console = cmd.ErrOrStderr()
	}

	s := &session{name: p.Profile, cfg: p.Config}
	fxApp := fx.New(
		app.Module(p),
		app.EventLogger,
		fx.Populate(&s.contacts, &s.prefs, &s.db),
	)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := fxApp.Start(ctx); err != nil {
		return err
	}

	runErr := fn(s)
	if err := fxApp.Stop(context.Background()); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
