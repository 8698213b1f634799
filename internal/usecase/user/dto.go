package user

import domainUser "contact-manager/internal/domain/user"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest is a partial update: a nil field leaves the stored value
// untouched, a present field must be non-empty.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=100"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// ToUserResponse shapes a user without the password hash or session token.
// The token is attached separately by login only.
func ToUserResponse(u *domainUser.User) *UserResponse {
	return &UserResponse{
		Username: u.Username,
		Name:     u.Name,
	}
}
