// Package adminauth issues and verifies admin sessions. Credentials are
// checked against a configured bcrypt hash, sessions are carried as signed
// JWTs and tracked server-side so sign-out revokes them before expiry.
// Session changes are published to subscribers.
package adminauth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"tasjeel/internal/config"
	"tasjeel/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Session describes an active admin session.
type Session struct {
	// TokenID is the unique id (jti) of the session token.
	TokenID string
	// Username of the signed-in admin.
	Username string
	// IssuedAt is when the session was created.
	IssuedAt time.Time
	// ExpiresAt is when the session token stops being accepted.
	ExpiresAt time.Time
}

// EventType marks what happened to a session.
type EventType string

const (
	EventSignedIn  EventType = "SIGNED_IN"
	EventSignedOut EventType = "SIGNED_OUT"
)

// Event is published to subscribers on every session change.
type Event struct {
	Type    EventType
	Session Session
}

// Options configure the session provider. These settings are typically
// derived from application configuration.
type Options struct {
	// Username of the single admin account.
	Username string
	// PasswordHash is the bcrypt hash the password is checked against.
	PasswordHash string
	// SessionSecret signs session tokens.
	SessionSecret string
	// SessionTTL is how long an issued session stays valid.
	SessionTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Username:      cfg.Admin.Username,
		PasswordHash:  cfg.Admin.PasswordHash,
		SessionSecret: cfg.Admin.SessionSecret,
		SessionTTL:    cfg.Admin.SessionTTL,
	}
}

// sessions is the concrete implementation of the Sessions interface.
type sessions struct {
	options Options

	mu     sync.RWMutex
	active map[string]Session

	subMu       sync.Mutex
	subscribers map[int]chan Event
	nextSubID   int
}

// SignIn checks the credentials and issues a signed session token. Wrong
// credentials are reported as a single unauthorized error without revealing
// which part was wrong.
func (s *sessions) SignIn(_ context.Context, username, password string) (string, *Session, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.options.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.options.PasswordHash), []byte(password))
	if !usernameOK || passwordErr != nil {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	now := time.Now().UTC()
	session := Session{
		TokenID:   uuid.NewString(),
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.options.SessionTTL),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        session.TokenID,
		Subject:   session.Username,
		IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	})
	signed, err := token.SignedString([]byte(s.options.SessionSecret))
	if err != nil {
		return "", nil, fmt.Errorf("could not sign session token: %w", err)
	}

	s.mu.Lock()
	s.active[session.TokenID] = session
	s.mu.Unlock()

	s.publish(Event{Type: EventSignedIn, Session: session})

	return signed, &session, nil
}

// SignOut revokes the session carried by the token. Revoking an already
// revoked or expired session is not an error.
func (s *sessions) SignOut(_ context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	session, ok := s.active[claims.ID]
	if ok {
		delete(s.active, claims.ID)
	}
	s.mu.Unlock()

	if ok {
		s.publish(Event{Type: EventSignedOut, Session: session})
	}

	return nil
}

// CurrentSession verifies the token and returns its session. Unknown, expired
// and revoked tokens are all reported as unauthorized.
func (s *sessions) CurrentSession(_ context.Context, token string) (*Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	session, ok := s.active[claims.ID]
	s.mu.RUnlock()
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, "session revoked")
	}

	return &session, nil
}

// Subscribe registers for session-change events. The returned function
// unsubscribes and must be called on teardown; afterwards the channel is
// closed.
func (s *sessions) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)

	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	s.subMu.Unlock()

	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()

		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
}

func (s *sessions) publish(event Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			// slow subscriber, drop rather than block sign-in/out
		}
	}
}

func (s *sessions) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return []byte(s.options.SessionSecret), nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}

	return claims, nil
}

// New creates a new session provider configured with the given options.
func New(options Options) Sessions {
	return &sessions{
		options:     options,
		active:      make(map[string]Session),
		subscribers: make(map[int]chan Event),
	}
}
