package user

// User represents a registered account. Username is the identity key and is
// immutable once created. Token holds the current session token, nil when the
// user is logged out.
type User struct {
	Username     string
	Name         string
	PasswordHash string
	Token        *string
}
