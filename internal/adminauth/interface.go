package adminauth

import "context"

// Sessions is the authenticated session provider guarding administrative
// operations. Authorization itself stays here; callers only check that a
// session exists.
type Sessions interface {
	SignIn(ctx context.Context, username, password string) (string, *Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentSession(ctx context.Context, token string) (*Session, error)
	Subscribe() (<-chan Event, func())
}
