package address

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainAddress "contact-manager/internal/domain/address"
	domainContact "contact-manager/internal/domain/contact"
	domainUser "contact-manager/internal/domain/user"
	"contact-manager/internal/logger"
	"contact-manager/internal/validation"
	apperrors "contact-manager/pkg/errors"
)

// Service implements address use cases. Ownership is two-hop: the parent
// contact is resolved against the acting user first, then the address against
// that contact. Only the first failing lookup is surfaced.
type Service struct {
	contactRepo domainContact.Repository
	addressRepo domainAddress.Repository
}

func NewService(contactRepo domainContact.Repository, addressRepo domainAddress.Repository) *Service {
	return &Service{
		contactRepo: contactRepo,
		addressRepo: addressRepo,
	}
}

func (s *Service) Create(ctx context.Context, user *domainUser.User, req *CreateAddressRequest) (*AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if err := s.resolveContact(ctx, user, req.ContactID); err != nil {
		return nil, err
	}

	address := &domainAddress.Address{
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	logger.Info("Address created",
		zap.Int64("address_id", address.ID),
		zap.Int64("contact_id", address.ContactID),
		zap.String("event", "address_created"),
	)

	return ToAddressResponse(address), nil
}

func (s *Service) Get(ctx context.Context, user *domainUser.User, req *GetAddressRequest) (*AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if err := s.resolveContact(ctx, user, req.ContactID); err != nil {
		return nil, err
	}

	address, err := s.resolveAddress(ctx, req.ContactID, req.ID)
	if err != nil {
		return nil, err
	}

	return ToAddressResponse(address), nil
}

func (s *Service) Update(ctx context.Context, user *domainUser.User, req *UpdateAddressRequest) (*AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if err := s.resolveContact(ctx, user, req.ContactID); err != nil {
		return nil, err
	}

	address, err := s.resolveAddress(ctx, req.ContactID, req.ID)
	if err != nil {
		return nil, err
	}

	address.Street = req.Street
	address.City = req.City
	address.Province = req.Province
	address.Country = req.Country
	address.PostalCode = req.PostalCode

	if err := s.addressRepo.Update(ctx, address); err != nil {
		if errors.Is(err, domainAddress.ErrAddressNotFound) {
			return nil, apperrors.NewNotFound("Address not found")
		}
		return nil, err
	}

	return ToAddressResponse(address), nil
}

func (s *Service) List(ctx context.Context, user *domainUser.User, contactID int64) ([]AddressResponse, error) {
	if err := s.resolveContact(ctx, user, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.ListByContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	responses := make([]AddressResponse, len(addresses))
	for i, a := range addresses {
		responses[i] = *ToAddressResponse(a)
	}

	return responses, nil
}

func (s *Service) Delete(ctx context.Context, user *domainUser.User, req *DeleteAddressRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	if err := s.resolveContact(ctx, user, req.ContactID); err != nil {
		return err
	}

	if _, err := s.resolveAddress(ctx, req.ContactID, req.ID); err != nil {
		return err
	}

	if err := s.addressRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, domainAddress.ErrAddressNotFound) {
			return apperrors.NewNotFound("Address not found")
		}
		return err
	}

	logger.Info("Address deleted",
		zap.Int64("address_id", req.ID),
		zap.Int64("contact_id", req.ContactID),
		zap.String("event", "address_deleted"),
	)

	return nil
}

func (s *Service) resolveContact(ctx context.Context, user *domainUser.User, contactID int64) error {
	_, err := s.contactRepo.GetByID(ctx, user.Username, contactID)
	if err != nil {
		if errors.Is(err, domainContact.ErrContactNotFound) {
			return apperrors.NewNotFound("Contact not found")
		}
		return err
	}
	return nil
}

func (s *Service) resolveAddress(ctx context.Context, contactID, addressID int64) (*domainAddress.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, contactID, addressID)
	if err != nil {
		if errors.Is(err, domainAddress.ErrAddressNotFound) {
			return nil, apperrors.NewNotFound("Address not found")
		}
		return nil, err
	}
	return address, nil
}
