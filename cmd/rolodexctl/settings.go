package main

import (
	"errors"
	"fmt"
	"io/fs"
	"text/tabwriter"
	"time"

	"github.com/matheus3301/rolodex/internal/config"
	"github.com/matheus3301/rolodex/internal/lock"
	"github.com/matheus3301/rolodex/internal/prefs"
	"github.com/matheus3301/rolodex/internal/profile"
	"github.com/matheus3301/rolodex/internal/store"
	"github.com/spf13/cobra"
)

func newThemeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProfile(cmd, opts, func(s *session) error {
				switch {
				case len(args) == 0:
				case args[0] == "toggle":
					if _, err := s.prefs.Toggle(); err != nil {
						return err
					}
				default:
					t, err := prefs.ParseTheme(args[0])
					if err != nil {
						return err
					}
					if err := s.prefs.Set(t); err != nil {
						return err
					}
				}
				if opts.jsonOut {
					return outputJSON(cmd.OutOrStdout(), map[string]string{"theme": string(s.prefs.Theme())})
				}
				fmt.Fprintln(cmd.OutOrStdout(), s.prefs.Theme())
				return nil
			})
		},
	}
}

type profileStatus struct {
	Name string `json:"name"`
	Path string `json:"path"`
	PID  int    `json:"pid,omitempty"`
}

func newProfilesCmd(opts *options) *cobra.Command {
	profiles := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect profiles",
	}
	profiles.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known profiles and whether one is open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := profile.List()
			if err != nil {
				return err
			}
			statuses := make([]profileStatus, 0, len(names))
			for _, name := range names {
				st := profileStatus{Name: name, Path: profile.Dir(name)}
				if pid, ok := lock.Holder(st.Path); ok {
					st.PID = pid
				}
				statuses = append(statuses, st)
			}

			if opts.jsonOut {
				return outputJSON(cmd.OutOrStdout(), statuses)
			}
			if len(statuses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles found.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, st := range statuses {
				state := "closed"
				if st.PID != 0 {
					state = fmt.Sprintf("open (pid %d)", st.PID)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", st.Name, st.Path, state)
			}
			return tw.Flush()
		},
	})
	profiles.AddCommand(&cobra.Command{
		Use:   "use <name>",
		Short: "Make a profile the default in config.toml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := profile.ValidateName(name); err != nil {
				return err
			}
			path := profile.ConfigPath()
			cfg, err := config.Load(path)
			if errors.Is(err, fs.ErrNotExist) {
				cfg, err = config.Defaults(), nil
			}
			if err != nil {
				return fmt.Errorf("load config %s: %w", path, err)
			}
			cfg.DefaultProfile = name
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			if opts.jsonOut {
				return outputJSON(cmd.OutOrStdout(), map[string]string{"default_profile": name})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default profile is now %s\n", name)
			return nil
		},
	})
	return profiles
}

type profileInfo struct {
	Profile   string       `json:"profile"`
	Path      string       `json:"path"`
	Database  string       `json:"database,omitempty"`
	Ephemeral bool         `json:"ephemeral"`
	Theme     string       `json:"theme"`
	Contacts  int          `json:"contacts"`
	Favorites int          `json:"favorites"`
	Slots     []store.Slot `json:"slots,omitempty"`
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what the profile holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfile(cmd, opts, func(s *session) error {
				info := profileInfo{
					Profile:   s.name,
					Path:      profile.Dir(s.name),
					Ephemeral: s.db == nil,
					Theme:     string(s.prefs.Theme()),
				}
				for _, c := range s.contacts.All() {
					info.Contacts++
					if c.Favorite {
						info.Favorites++
					}
				}
				if s.db != nil {
					info.Database = s.db.Path()
					slots, err := s.db.ListSlots()
					if err != nil {
						return err
					}
					info.Slots = slots
				}

				if opts.jsonOut {
					return outputJSON(cmd.OutOrStdout(), info)
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "Profile:   %s\n", info.Profile)
				fmt.Fprintf(w, "Path:      %s\n", info.Path)
				if info.Database != "" {
					fmt.Fprintf(w, "Database:  %s\n", info.Database)
				}
				fmt.Fprintf(w, "Ephemeral: %v\n", info.Ephemeral)
				fmt.Fprintf(w, "Theme:     %s\n", info.Theme)
				fmt.Fprintf(w, "Contacts:  %d (%d favorites)\n", info.Contacts, info.Favorites)
				for _, sl := range info.Slots {
					fmt.Fprintf(w, "Slot:      %s (%d bytes, updated %s)\n", sl.Key, sl.Size, time.UnixMilli(sl.UpdatedAt).Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}
