package app

import (
	"github.com/matheus3301/rolodex/internal/config"
	"github.com/matheus3301/rolodex/internal/profile"
)

// Resolve loads the global config and picks the profile to open: the flag
// first, then ROLODEX_PROFILE or default_profile, then "main".
func Resolve(profileFlag string, ephemeral bool) (Params, error) {
	cfg, err := config.Resolve(profile.ConfigPath())
	if err != nil {
		return Params{}, err
	}
	name := profile.Resolve(profileFlag, cfg)
	if err := profile.ValidateName(name); err != nil {
		return Params{}, err
	}
	return Params{Profile: name, Config: cfg, Ephemeral: ephemeral}, nil
}
