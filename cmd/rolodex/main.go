package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheus3301/rolodex/internal/app"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/prefs"
	"github.com/matheus3301/rolodex/internal/tui"
	"github.com/matheus3301/rolodex/internal/tui/model"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides ROLODEX_PROFILE and config)")
	ephemeral := flag.Bool("ephemeral", false, "use an in-memory profile that is discarded on exit")
	flag.Parse()

	if err := run(*profileFlag, *ephemeral); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(profileFlag string, ephemeral bool) error {
	p, err := app.Resolve(profileFlag, ephemeral)
	if err != nil {
		return err
	}

	var (
		contacts *contact.Store
		theme    *prefs.Store
		logger   *zap.Logger
	)
	fxApp := fx.New(
		app.Module(p),
		app.EventLogger,
		fx.Populate(&contacts, &theme, &logger),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fxApp.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := fxApp.Stop(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}()

	vm := model.NewViewModel(contacts, theme, contact.View{Locale: p.Config.Tag()})
	ui := tui.NewApp(vm, tui.Options{
		Profile:     p.Profile,
		CountryCode: p.Config.DefaultCountryCode,
		Logger:      logger,
	})
	if err := ui.Run(ctx); err != nil {
		logger.Error("tui exited with error", zap.Error(err))
		return err
	}
	return nil
}
