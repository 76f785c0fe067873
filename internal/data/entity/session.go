package entity

import "time"

type SessionKind string

const (
	KindUser  SessionKind = "user"
	KindAdmin SessionKind = "admin"
)

// Session is one authenticated principal. The token is the sole bearer
// credential; sessions never expire on their own, they live until logout
// or process restart.
type Session struct {
	Token     string
	Kind      SessionKind
	Email     string // email for users, admin id for admins
	Name      string
	IsAdmin   bool
	CreatedAt time.Time
}
