package model

// PasswordHasher hashes and verifies user passwords. Verify must fail
// closed on malformed digests instead of returning an error the caller
// could mishandle.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
