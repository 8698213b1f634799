package contact

import "context"

// Repository defines the interface for contact persistence operations. Every
// lookup and mutation is scoped to the owning username; a row that exists for
// another user is indistinguishable from a missing row.
type Repository interface {
	Create(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, username string, id int64) (*Contact, error)
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, username string, id int64) error
	Search(ctx context.Context, username string, filter *Filter) ([]*Contact, error)
}

// Filter represents the search window. Name matches first or last name
// containment; Email and Phone are independent containment filters. All
// supplied filters are combined with AND.
type Filter struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}
