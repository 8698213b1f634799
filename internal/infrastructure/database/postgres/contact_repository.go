package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domainContact "contact-manager/internal/domain/contact"
	"contact-manager/internal/infrastructure/database/postgres/models"
)

// ContactRepository implements the contact domain repository on gorm. All
// single-row operations are scoped by id AND username. The ownership check
// and a following mutation are separate statements without a transaction; a
// concurrent delete between them loses to the mutation's own scoping, which
// then reports not found. True atomicity would need conditional writes.
type ContactRepository struct {
	db *DB
}

func NewContactRepository(db *DB) domainContact.Repository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domainContact.Contact) error {
	dbModel := toContactModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	c.ID = dbModel.ID
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, username string, id int64) (*domainContact.Contact, error) {
	var dbModel models.ContactModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainContact.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return toContactEntity(&dbModel), nil
}

func (r *ContactRepository) Update(ctx context.Context, c *domainContact.Contact) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ContactModel{}).
		Where("id = ? AND username = ?", c.ID, c.Username).
		Updates(map[string]interface{}{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"email":      c.Email,
			"phone":      c.Phone,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainContact.ErrContactNotFound
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, username string, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&models.ContactModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainContact.ErrContactNotFound
	}

	return nil
}

func (r *ContactRepository) Search(ctx context.Context, username string, filter *domainContact.Filter) ([]*domainContact.Contact, error) {
	query := r.db.DB.WithContext(ctx).
		Model(&models.ContactModel{}).
		Where("username = ?", username)

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}

	var rows []models.ContactModel
	err := query.
		Order("id").
		Offset((filter.Page - 1) * filter.Size).
		Limit(filter.Size).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	contacts := make([]*domainContact.Contact, len(rows))
	for i := range rows {
		contacts[i] = toContactEntity(&rows[i])
	}

	return contacts, nil
}

func toContactModel(c *domainContact.Contact) *models.ContactModel {
	return &models.ContactModel{
		ID:        c.ID,
		Username:  c.Username,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func toContactEntity(m *models.ContactModel) *domainContact.Contact {
	return &domainContact.Contact{
		ID:        m.ID,
		Username:  m.Username,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
	}
}
