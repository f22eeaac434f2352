package ports

import "context"

// LoginResult is returned by Login. Username is echoed back on success; no
// token or session is issued, callers resend the username on later requests.
type LoginResult struct {
	Success  bool
	Username string
}

type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (LoginResult, error)
}
