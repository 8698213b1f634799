package contact

import domainContact "contact-manager/internal/domain/contact"

type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateContactRequest struct {
	ID        int64   `json:"-" validate:"required,gt=0"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

type SearchContactRequest struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
	Page  int    `form:"page" validate:"omitempty,gt=0"`
	Size  int    `form:"size" validate:"omitempty,gt=0"`
}

type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}

// SearchResponse is written to the wire as-is: the data array and paging sit
// side by side at the top level instead of inside the usual data envelope.
type SearchResponse struct {
	Data   []ContactResponse `json:"data"`
	Paging Paging            `json:"paging"`
}

func ToContactResponse(c *domainContact.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
