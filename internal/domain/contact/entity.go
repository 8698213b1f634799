package contact

// Contact belongs to exactly one user, referenced by the owning username.
type Contact struct {
	ID        int64
	Username  string
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
}
