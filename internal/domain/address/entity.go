package address

// Address belongs to exactly one contact. Ownership by a user is two-hop:
// Address -> Contact -> User.
type Address struct {
	ID         int64
	ContactID  int64
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode string
}
