package models

// User represents a user row keyed by the Google subject id
type User struct {
	GoogleID      string `json:"google_id"`
	Name          string `json:"name"`
	Nickname      string `json:"nickname,omitempty"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	PictureURL    string `json:"picture_url,omitempty"`
}

// GoogleAuthRequest is the request body for POST /api/auth/google
type GoogleAuthRequest struct {
	Token string `json:"token"`
}

// GoogleAuthResponse is returned after a successful token exchange
type GoogleAuthResponse struct {
	Status string `json:"status"`
	User   *User  `json:"user"`
	Token  string `json:"token"`
}
