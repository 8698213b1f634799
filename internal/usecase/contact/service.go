package contact

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainContact "contact-manager/internal/domain/contact"
	domainUser "contact-manager/internal/domain/user"
	"contact-manager/internal/logger"
	"contact-manager/internal/validation"
	apperrors "contact-manager/pkg/errors"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// Service implements contact use cases. Every operation follows the same
// protocol: validate, resolve ownership through the repository's
// username-scoped lookups, execute, shape.
type Service struct {
	contactRepo domainContact.Repository
}

func NewService(contactRepo domainContact.Repository) *Service {
	return &Service{contactRepo: contactRepo}
}

func (s *Service) Create(ctx context.Context, user *domainUser.User, req *CreateContactRequest) (*ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact := &domainContact.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	logger.Info("Contact created",
		zap.Int64("contact_id", contact.ID),
		zap.String("username", user.Username),
		zap.String("event", "contact_created"),
	)

	return ToContactResponse(contact), nil
}

func (s *Service) Get(ctx context.Context, user *domainUser.User, contactID int64) (*ContactResponse, error) {
	contact, err := s.resolveOwned(ctx, user, contactID)
	if err != nil {
		return nil, err
	}

	return ToContactResponse(contact), nil
}

func (s *Service) Update(ctx context.Context, user *domainUser.User, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.resolveOwned(ctx, user, req.ID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		if errors.Is(err, domainContact.ErrContactNotFound) {
			return nil, apperrors.NewNotFound("Contact not found")
		}
		return nil, err
	}

	return ToContactResponse(contact), nil
}

func (s *Service) Delete(ctx context.Context, user *domainUser.User, contactID int64) error {
	if _, err := s.resolveOwned(ctx, user, contactID); err != nil {
		return err
	}

	if err := s.contactRepo.Delete(ctx, user.Username, contactID); err != nil {
		if errors.Is(err, domainContact.ErrContactNotFound) {
			return apperrors.NewNotFound("Contact not found")
		}
		return err
	}

	logger.Info("Contact deleted",
		zap.Int64("contact_id", contactID),
		zap.String("username", user.Username),
		zap.String("event", "contact_deleted"),
	)

	return nil
}

// Search fetches one page of the user's contacts. TotalPage is derived from
// the returned rows, not the full matching set, so it is always 0 or 1; a
// true total count is intentionally not computed.
func (s *Service) Search(ctx context.Context, user *domainUser.User, req *SearchContactRequest) (*SearchResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if req.Page == 0 {
		req.Page = defaultPage
	}
	if req.Size == 0 {
		req.Size = defaultSize
	}

	filter := &domainContact.Filter{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Page:  req.Page,
		Size:  req.Size,
	}

	contacts, err := s.contactRepo.Search(ctx, user.Username, filter)
	if err != nil {
		return nil, err
	}

	data := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		data[i] = *ToContactResponse(c)
	}

	totalPage := (len(contacts) + req.Size - 1) / req.Size

	return &SearchResponse{
		Data: data,
		Paging: Paging{
			CurrentPage: req.Page,
			TotalPage:   totalPage,
			Size:        req.Size,
		},
	}, nil
}

// resolveOwned looks up a contact scoped to the acting user. A contact owned
// by someone else resolves the same way as a missing one.
func (s *Service) resolveOwned(ctx context.Context, user *domainUser.User, contactID int64) (*domainContact.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, user.Username, contactID)
	if err != nil {
		if errors.Is(err, domainContact.ErrContactNotFound) {
			return nil, apperrors.NewNotFound("Contact not found")
		}
		return nil, err
	}
	return contact, nil
}
