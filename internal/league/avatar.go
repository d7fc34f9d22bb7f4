package league

import (
	"fmt"

	"github.com/segmentio/fasthash/fnv1a"
)

// DefaultAvatarURL returns a stable placeholder avatar for a profile with no
// uploaded avatar. The seed is a hash of the profile ID so the same player
// always gets the same picture.
func DefaultAvatarURL(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/100", fnv1a.HashString64(id))
}

// AvatarURL returns the profile's avatar, falling back to the generated
// placeholder.
func (u UserProfile) AvatarURL() string {
	if u.Avatar != "" {
		return u.Avatar
	}
	return DefaultAvatarURL(u.ID)
}
