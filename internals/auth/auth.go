package auth

import (
	"crypto/md5"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNoSession is returned if no session is stored
var ErrNoSession = errors.New("no session found")

// Provider can supply the session used to launch the game
type Provider interface {
	// Session returns the session needed to launch the game
	Session() (*Session, error)
}

// Session is an authenticated (or offline) Minecraft session
type Session struct {
	Profile     Profile `json:"profile"`
	AccessToken Token   `json:"accessToken"`
}

// UserProfile returns the profile of the session owner
func (s *Session) UserProfile() Profile { return s.Profile }

// Session implements Provider, so a plain session can be used where a provider is expected
func (s *Session) Session() (*Session, error) { return s, nil }

// Profile is the player profile that is launched
type Profile struct {
	Name string `json:"name"`
	ID   UUID   `json:"id"`
}

// UUID returns the profile id
func (p Profile) UUID() UUID { return p.ID }

// UUID is a player id
type UUID struct {
	uuid.UUID
}

// Simple returns the uuid without dashes.
// example: 069a79f444e94726a5befca90e38aeca
func (u UUID) Simple() string {
	return strings.ReplaceAll(u.String(), "-", "")
}

// ParseUUID parses both the dashed and the simple form
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errors.Wrapf(err, "invalid uuid %q", s)
	}
	return UUID{id}, nil
}

// Token is a session access token
type Token string

// Simple returns the raw token
func (t Token) Simple() string { return string(t) }

// Offline returns a session for name that can only be used for offline play.
// The id matches the one offline mode servers assign to the player.
func Offline(name string) *Session {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = (sum[6] & 0x0f) | 0x30 // version 3
	sum[8] = (sum[8] & 0x3f) | 0x80 // RFC 4122 variant

	return &Session{
		Profile: Profile{
			Name: name,
			ID:   UUID{uuid.UUID(sum)},
		},
		AccessToken: "0",
	}
}
