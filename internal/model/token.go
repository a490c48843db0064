package model

// Claims carries the identity encoded in an access token.
type Claims struct {
	Username string
	UserID   int64
}

// TokenManager generates and validates access tokens.
type TokenManager interface {
	Generate(username string, userID int64) (string, error)
	Parse(token string) (Claims, error)
}
