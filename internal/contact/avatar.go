package contact

import "net/url"

// DefaultAvatarBase is the generated-avatar service used when none is configured.
const DefaultAvatarBase = "https://ui-avatars.com/api/"

// AvatarFunc derives an avatar reference from a display name. It must be pure.
type AvatarFunc func(name string) string

// AvatarURL returns an AvatarFunc that renders initials via base.
func AvatarURL(base string) AvatarFunc {
	if base == "" {
		base = DefaultAvatarBase
	}
	return func(name string) string {
		return base + "?" + url.Values{"name": {name}}.Encode()
	}
}
