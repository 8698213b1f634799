package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainContact "contact-manager/internal/domain/contact"
	domainUser "contact-manager/internal/domain/user"
	"contact-manager/internal/middleware"
)

const testToken = "session-token"

func testUser() *domainUser.User {
	token := testToken
	return &domainUser.User{Username: "johndoe", Name: "John Doe", Token: &token}
}

func TestContactRoutesRequireToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	router := newTestRouter(userRepo, new(MockContactRepository), new(MockAddressRepository))

	userRepo.On("GetByToken", mock.Anything, mock.Anything).Return(nil, domainUser.ErrUserNotFound)

	for _, withHeader := range []bool{false, true} {
		req, _ := http.NewRequest(http.MethodGet, "/api/contacts/1", nil)
		if withHeader {
			req.Header.Set(middleware.TokenHeader, "stale-token")
		}

		w := perform(router, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"errors": "Unauthorized"}`, w.Body.String())
	}
}

func TestCreateContactHandler(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	router := newTestRouter(userRepo, contactRepo, new(MockAddressRepository))

	authorize(userRepo, testToken, testUser())
	contactRepo.On("Create", mock.Anything, mock.AnythingOfType("*contact.Contact")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domainContact.Contact).ID = 7
		}).
		Return(nil)

	body := []byte(`{"first_name": "Jane", "last_name": "Smith", "email": "jane@example.com", "phone": "081234"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": {"id": 7, "first_name": "Jane", "last_name": "Smith", "email": "jane@example.com", "phone": "081234"}}`, w.Body.String())
}

func TestGetContactNotOwnedHandler(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	router := newTestRouter(userRepo, contactRepo, new(MockAddressRepository))

	authorize(userRepo, testToken, testUser())
	// The row may exist for another user; the scoped lookup cannot tell.
	contactRepo.On("GetByID", mock.Anything, "johndoe", int64(42)).
		Return(nil, domainContact.ErrContactNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/api/contacts/42", nil)
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"errors": "Contact not found"}`, w.Body.String())
}

func TestGetContactInvalidID(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	router := newTestRouter(userRepo, contactRepo, new(MockAddressRepository))

	authorize(userRepo, testToken, testUser())

	req, _ := http.NewRequest(http.MethodGet, "/api/contacts/abc", nil)
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors": [{"field": "contactId", "message": "must be a positive integer"}]}`, w.Body.String())
	contactRepo.AssertNotCalled(t, "GetByID")
}

func TestDeleteContactHandler(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	router := newTestRouter(userRepo, contactRepo, new(MockAddressRepository))

	authorize(userRepo, testToken, testUser())
	contactRepo.On("GetByID", mock.Anything, "johndoe", int64(3)).
		Return(&domainContact.Contact{ID: 3, Username: "johndoe", FirstName: "Jane"}, nil)
	contactRepo.On("Delete", mock.Anything, "johndoe", int64(3)).Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/api/contacts/3", nil)
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": "OK"}`, w.Body.String())
}

func TestSearchContactsHandler(t *testing.T) {
	userRepo := new(MockUserRepository)
	contactRepo := new(MockContactRepository)
	router := newTestRouter(userRepo, contactRepo, new(MockAddressRepository))

	authorize(userRepo, testToken, testUser())
	contactRepo.On("Search", mock.Anything, "johndoe", &domainContact.Filter{Name: "ja", Page: 1, Size: 10}).
		Return([]*domainContact.Contact{{ID: 1, Username: "johndoe", FirstName: "Jane"}}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/contacts?name=ja", nil)
	req.Header.Set(middleware.TokenHeader, testToken)

	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"data": [{"id": 1, "first_name": "Jane", "last_name": null, "email": null, "phone": null}],
		"paging": {"current_page": 1, "total_page": 1, "size": 10}
	}`, w.Body.String())
}
