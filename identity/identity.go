package identity

import "context"

// LocalSession is a session issued by this backend; it carries the backend
// user id directly.
type LocalSession struct {
	UserID string
}

// ProviderSession is a session issued by a third-party sign-on provider; it
// only exposes the account email.
type ProviderSession struct {
	Email string
}

// LookupByEmail returns the backend user id for an email, or an error when no
// matching user exists or the lookup itself fails.
type LookupByEmail func(ctx context.Context, email string) (string, error)

// ResolveUserID produces the backend user id owning a submission, or "" when
// no identity can be established.
//
// Resolution order is fixed: a local session id is used directly without any
// lookup; otherwise a provider email triggers exactly one lookup. A failed
// lookup is swallowed and resolves to "" so that a best-effort fallback never
// surfaces as an error to the caller.
func ResolveUserID(ctx context.Context, local *LocalSession, provider *ProviderSession, lookup LookupByEmail) string {
	if local != nil && local.UserID != "" {
		return local.UserID
	}
	if provider == nil || provider.Email == "" || lookup == nil {
		return ""
	}
	id, err := lookup(ctx, provider.Email)
	if err != nil {
		return ""
	}
	return id
}
