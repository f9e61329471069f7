package models

// TokenResponse is the body returned by the register and login endpoints.
type TokenResponse struct {
	// AccessToken is the signed bearer token the client presents on
	// subsequent requests in the "Authorization" header.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// User is the public projection of the account the token was issued for.
	User User `json:"user"`
}

// UploadResponse is the body returned by a successful file upload.
type UploadResponse struct {
	// Filename is the generated name the file was stored under.
	Filename string `json:"filename"`

	// URL is the public static path the file is served from.
	URL string `json:"url"`
}

// MessageResponse carries a single human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body of the API. Every failure
// returns a human-readable detail string; no structured error codes
// are exposed.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body of the health-check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
