package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPrincipal is the typed identity the auth middleware puts in the request
// context. Handlers and guards read this, never raw claims.
type AuthPrincipal struct {
	UserID uint    `json:"user_id"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Expiry float64 `json:"-"`
}
