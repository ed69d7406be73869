package session

import "context"

// Issuer produces and revokes the values carried by the session cookie. The
// cookie itself is set and cleared at the HTTP layer; an Issuer only decides
// what the value is and whether any server-side record backs it.
type Issuer interface {
	// Issue returns the cookie value for a verified subject.
	Issue(ctx context.Context, sub string) (string, error)
	// Revoke invalidates any server-side state behind the cookie value.
	// Stateless issuers treat this as a no-op.
	Revoke(ctx context.Context, value string) error
}

// SubjectIssuer is the demo default: the cookie value is the verified subject
// itself. The value is meaningless without re-verification and no server-side
// session record exists.
type SubjectIssuer struct{}

// NewSubjectIssuer creates the stateless demo issuer.
func NewSubjectIssuer() *SubjectIssuer {
	return &SubjectIssuer{}
}

// Issue returns the subject unchanged.
func (i *SubjectIssuer) Issue(_ context.Context, sub string) (string, error) {
	return sub, nil
}

// Revoke is a no-op; there is no server-side state.
func (i *SubjectIssuer) Revoke(_ context.Context, _ string) error {
	return nil
}
