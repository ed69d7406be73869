package model

// GoogleProfile holds the identity claims extracted from a verified Google
// ID token.
type GoogleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Sub     string `json:"sub"`
}
