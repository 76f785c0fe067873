package utils

import "context"

type contextKey string

const (
	TokenKey contextKey = "token"
	EmailKey contextKey = "email"
)

// SetSessionContext records the verified session token and identity so
// handlers behind the gate can read them without re-parsing the cookie.
func SetSessionContext(ctx context.Context, token, email string) context.Context {
	ctx = context.WithValue(ctx, TokenKey, token)
	ctx = context.WithValue(ctx, EmailKey, email)
	return ctx
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok && token != ""
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok && email != ""
}
