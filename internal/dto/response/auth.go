package response

// AuthUser mirrors the user object the storefront client reads after
// login: users get email+name, admins get id.
type AuthUser struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	ID    string `json:"id,omitempty"`
	Type  string `json:"type"`
}

type LoginResponse struct {
	Success   bool     `json:"success"`
	SessionID string   `json:"sessionId"`
	User      AuthUser `json:"user"`
}

type CheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email"`
	Type          string `json:"type"`
}
