package address

import domainAddress "contact-manager/internal/domain/address"

type CreateAddressRequest struct {
	ContactID  int64   `json:"-" validate:"required,gt=0"`
	Street     *string `json:"street" validate:"omitempty,max=200"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	Province   *string `json:"province" validate:"omitempty,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}

type GetAddressRequest struct {
	ID        int64 `json:"-" validate:"required,gt=0"`
	ContactID int64 `json:"-" validate:"required,gt=0"`
}

type UpdateAddressRequest struct {
	ID         int64   `json:"-" validate:"required,gt=0"`
	ContactID  int64   `json:"-" validate:"required,gt=0"`
	Street     *string `json:"street" validate:"omitempty,max=200"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	Province   *string `json:"province" validate:"omitempty,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}

type DeleteAddressRequest struct {
	ID        int64 `json:"-" validate:"required,gt=0"`
	ContactID int64 `json:"-" validate:"required,gt=0"`
}

type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

func ToAddressResponse(a *domainAddress.Address) *AddressResponse {
	return &AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
