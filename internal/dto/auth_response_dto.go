package dto

// LoginRequest defines the credential login payload. Residents sign in
// with their flat number, admins with their email; exactly one of the
// two identifiers must be present.
type LoginRequest struct {
	FlatNo   string `json:"flatNo,omitempty"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest defines the Google sign-in payload for admins.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}
