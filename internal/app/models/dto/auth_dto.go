package dto

// LoginResponse is returned on a successful login. Token carries the
// "Bearer " prefix so clients can echo it back verbatim.
type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expires_in"`
}
