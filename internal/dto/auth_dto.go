package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest accepts the OAuth2 password form, where the email travels in
// the username field, as well as a JSON body with an explicit email key.
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required_without=Email,max=255"`
	Email    string `form:"email"    json:"email"    validate:"required_without=Username,max=255"`
	Password string `form:"password" json:"password" validate:"required"`
}

// Identity returns whichever of username/email was supplied.
func (r LoginRequest) Identity() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"` // seconds
}
