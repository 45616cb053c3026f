// Package app composes a profile's components with fx.
package app

import (
	"context"
	"io"

	"github.com/matheus3301/rolodex/internal/bus"
	"github.com/matheus3301/rolodex/internal/config"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/journal"
	"github.com/matheus3301/rolodex/internal/lock"
	"github.com/matheus3301/rolodex/internal/logging"
	"github.com/matheus3301/rolodex/internal/prefs"
	"github.com/matheus3301/rolodex/internal/profile"
	"github.com/matheus3301/rolodex/internal/store"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the resolved profile configuration passed to the fx module.
type Params struct {
	Profile string
	Config  *config.Config
	// Ephemeral keeps everything in memory: no lock, no database, no log
	// file. Logs go to Console only.
	Ephemeral bool
	// Console mirrors log output when non-nil (CLI only; the TUI owns the terminal).
	Console io.Writer
}

// Module returns the fx module for a profile, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	if p.Config == nil {
		p.Config = config.Defaults()
	}
	return fx.Module("rolodex",
		fx.Supply(p, p.Config),
		fx.Provide(
			provideLogger,
			provideBus,
			provideLock,
			provideDB,
			provideSlots,
			provideContacts,
			providePrefs,
			provideJournal,
		),
		fx.Invoke(registerLifecycle),
	)
}

// EventLogger routes fx's own lifecycle messages into the profile log.
// Pass it to fx.New next to Module.
var EventLogger = fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l.Named("fx")}
})

func provideLogger(p Params) (*zap.Logger, error) {
	if p.Ephemeral {
		return logging.New(logging.Options{Profile: p.Profile, Level: p.Config.LogLevel, Console: p.Console})
	}
	if err := profile.EnsureDir(p.Profile); err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Path:    profile.LogPath(p.Profile),
		Profile: p.Profile,
		Level:   p.Config.LogLevel,
		Console: p.Console,
	})
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if p.Ephemeral {
		return nil, nil
	}
	l, err := lock.Acquire(profile.Dir(p.Profile))
	if err != nil {
		return nil, err
	}
	logger.Debug("profile lock acquired", zap.String("path", profile.LockPath(p.Profile)))
	return l, nil
}

// provideDB depends on the lock so the database is only opened by its owner.
func provideDB(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	if p.Ephemeral {
		return nil, nil
	}
	dbPath := profile.DBPath(p.Profile)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Debug("migrations up to date", zap.Uint("version", result.Version))
	}
	return db, nil
}

func provideSlots(db *store.DB) contact.Slots {
	if db == nil {
		return store.NewMemory()
	}
	return db
}

func provideContacts(cfg *config.Config, slots contact.Slots, b *bus.Bus) *contact.Store {
	return contact.New(contact.NewSlotPersister(slots),
		contact.WithAvatars(contact.AvatarURL(cfg.AvatarBaseURL)),
		contact.WithPublisher(b),
	)
}

func providePrefs(cfg *config.Config, slots contact.Slots, b *bus.Bus) *prefs.Store {
	def, err := prefs.ParseTheme(cfg.DefaultTheme)
	if err != nil {
		def = prefs.Dark
	}
	return prefs.Open(slots, b, def)
}

func provideJournal(b *bus.Bus, logger *zap.Logger) *journal.Journal {
	return journal.New(b, logger)
}

func registerLifecycle(lc fx.Lifecycle, p Params, contacts *contact.Store, j *journal.Journal, db *store.DB, lk *lock.Lock, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			j.Start(context.Background())
			loaded := contacts.Load()
			logger.Info("contacts loaded",
				zap.Int("count", len(loaded)),
				zap.Bool("ephemeral", p.Ephemeral),
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			j.Stop()
			if db != nil {
				if err := db.Close(); err != nil {
					logger.Warn("error closing database", zap.Error(err))
				}
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("profile closed")
			_ = logger.Sync()
			return nil
		},
	})
}
