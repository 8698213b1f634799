package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"contact-manager/internal/config"
	domainAddress "contact-manager/internal/domain/address"
	domainContact "contact-manager/internal/domain/contact"
	domainUser "contact-manager/internal/domain/user"
	"contact-manager/internal/logger"
	"contact-manager/internal/middleware"
	"contact-manager/internal/usecase/address"
	"contact-manager/internal/usecase/contact"
	"contact-manager/internal/usecase/user"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domainUser.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetByToken(ctx context.Context, token string) (*domainUser.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *domainContact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) GetByID(ctx context.Context, username string, id int64) (*domainContact.Contact, error) {
	args := m.Called(ctx, username, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainContact.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, c *domainContact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, username string, id int64) error {
	args := m.Called(ctx, username, id)
	return args.Error(0)
}

func (m *MockContactRepository) Search(ctx context.Context, username string, filter *domainContact.Filter) ([]*domainContact.Contact, error) {
	args := m.Called(ctx, username, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainContact.Contact), args.Error(1)
}

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, a *domainAddress.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) GetByID(ctx context.Context, contactID, id int64) (*domainAddress.Address, error) {
	args := m.Called(ctx, contactID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainAddress.Address), args.Error(1)
}

func (m *MockAddressRepository) ListByContact(ctx context.Context, contactID int64) ([]*domainAddress.Address, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainAddress.Address), args.Error(1)
}

func (m *MockAddressRepository) Update(ctx context.Context, a *domainAddress.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	_ domainUser.Repository    = (*MockUserRepository)(nil)
	_ domainContact.Repository = (*MockContactRepository)(nil)
	_ domainAddress.Repository = (*MockAddressRepository)(nil)
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// newTestRouter wires real services over mocked repositories behind the real
// auth middleware, mirroring the production route table.
func newTestRouter(userRepo *MockUserRepository, contactRepo *MockContactRepository, addressRepo *MockAddressRepository) *gin.Engine {
	cfg := &config.Config{Auth: config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	userHandler := NewUserHandler(user.NewService(userRepo, cfg))
	contactHandler := NewContactHandler(contact.NewService(contactRepo))
	addressHandler := NewAddressHandler(address.NewService(contactRepo, addressRepo))

	router := gin.New()
	api := router.Group("/api")
	userHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(userRepo))
	userHandler.RegisterRoutes(protected)
	contactHandler.RegisterRoutes(protected)
	addressHandler.RegisterRoutes(protected)

	return router
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authorize(userRepo *MockUserRepository, token string, u *domainUser.User) {
	userRepo.On("GetByToken", mock.Anything, token).Return(u, nil)
}
