package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainAddress "contact-manager/internal/domain/address"
	domainContact "contact-manager/internal/domain/contact"
	"contact-manager/internal/middleware"
)

func ownedContact(id int64) *domainContact.Contact {
	return &domainContact.Contact{ID: id, Username: "johndoe", FirstName: "Jane"}
}

func TestCreateAddressHandler(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	addressRepo := new(MockAddressRepository)
	router := newTestRouter(userRepo, contactRepo, addressRepo)

	authorize(userRepo, testToken, testUser())
	contactRepo.On("GetByID", mock.Anything, "johndoe", int64(5)).Return(ownedContact(5), nil)
	addressRepo.On("Create", mock.Anything, mock.AnythingOfType("*address.Address")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domainAddress.Address).ID = 11
		}).
		Return(nil)

	body := []byte(`{"street": "Jalan Sudirman", "city": "Jakarta", "province": "DKI Jakarta", "country": "indonesia", "postal_code": "4313"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts/5/addresses", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": {"id": 11, "street": "Jalan Sudirman", "city": "Jakarta", "province": "DKI Jakarta", "country": "indonesia", "postal_code": "4313"}}`, w.Body.String())
}

func TestCreateAddressMissingRequiredFields(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	addressRepo := new(MockAddressRepository)
	router := newTestRouter(userRepo, contactRepo, addressRepo)

	authorize(userRepo, testToken, testUser())

	body := []byte(`{"street": "Jalan Sudirman"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts/5/addresses", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors": [
		{"field": "country", "message": "is required"},
		{"field": "postal_code", "message": "is required"}
	]}`, w.Body.String())
	contactRepo.AssertNotCalled(t, "GetByID")
}

func TestGetAddressWrongContactHandler(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	addressRepo := new(MockAddressRepository)
	router := newTestRouter(userRepo, contactRepo, addressRepo)

	authorize(userRepo, testToken, testUser())
	contactRepo.On("GetByID", mock.Anything, "johndoe", int64(99)).
		Return(nil, domainContact.ErrContactNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/api/contacts/99/addresses/100", nil)
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"errors": "Contact not found"}`, w.Body.String())
	addressRepo.AssertNotCalled(t, "GetByID")
}

func TestDeleteAddressHandler(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	addressRepo := new(MockAddressRepository)
	router := newTestRouter(userRepo, contactRepo, addressRepo)

	authorize(userRepo, testToken, testUser())
	contactRepo.On("GetByID", mock.Anything, "johndoe", int64(5)).Return(ownedContact(5), nil)
	addressRepo.On("GetByID", mock.Anything, int64(5), int64(8)).
		Return(&domainAddress.Address{ID: 8, ContactID: 5, Country: "indonesia", PostalCode: "4313"}, nil)
	addressRepo.On("Delete", mock.Anything, int64(8)).Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/api/contacts/5/addresses/8", nil)
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": "OK"}`, w.Body.String())
}

func TestListAddressesHandler(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	addressRepo := new(MockAddressRepository)
	router := newTestRouter(userRepo, contactRepo, addressRepo)

	authorize(userRepo, testToken, testUser())
	contactRepo.On("GetByID", mock.Anything, "johndoe", int64(5)).Return(ownedContact(5), nil)
	addressRepo.On("ListByContact", mock.Anything, int64(5)).Return([]*domainAddress.Address{
		{ID: 1, ContactID: 5, Country: "indonesia", PostalCode: "4313"},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/contacts/5/addresses", nil)
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": [{"id": 1, "street": null, "city": null, "province": null, "country": "indonesia", "postal_code": "4313"}]}`, w.Body.String())
}
