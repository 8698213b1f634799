package address

import "context"

// Repository defines the interface for address persistence operations.
// Lookups are scoped to the parent contact id; resolving that contact against
// the acting user is the caller's responsibility.
type Repository interface {
	Create(ctx context.Context, address *Address) error
	GetByID(ctx context.Context, contactID, id int64) (*Address, error)
	ListByContact(ctx context.Context, contactID int64) ([]*Address, error)
	Update(ctx context.Context, address *Address) error
	Delete(ctx context.Context, id int64) error
}
