package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domainAddress "contact-manager/internal/domain/address"
	"contact-manager/internal/infrastructure/database/postgres/models"
)

// AddressRepository implements the address domain repository on gorm.
type AddressRepository struct {
	db *DB
}

func NewAddressRepository(db *DB) domainAddress.Repository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, a *domainAddress.Address) error {
	dbModel := toAddressModel(a)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	a.ID = dbModel.ID
	return nil
}

func (r *AddressRepository) GetByID(ctx context.Context, contactID, id int64) (*domainAddress.Address, error) {
	var dbModel models.AddressModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainAddress.ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	return toAddressEntity(&dbModel), nil
}

func (r *AddressRepository) ListByContact(ctx context.Context, contactID int64) ([]*domainAddress.Address, error) {
	var rows []models.AddressModel
	err := r.db.DB.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	addresses := make([]*domainAddress.Address, len(rows))
	for i := range rows {
		addresses[i] = toAddressEntity(&rows[i])
	}

	return addresses, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *domainAddress.Address) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.AddressModel{}).
		Where("id = ? AND contact_id = ?", a.ID, a.ContactID).
		Updates(map[string]interface{}{
			"street":      a.Street,
			"city":        a.City,
			"province":    a.Province,
			"country":     a.Country,
			"postal_code": a.PostalCode,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainAddress.ErrAddressNotFound
	}

	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.AddressModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainAddress.ErrAddressNotFound
	}

	return nil
}

func toAddressModel(a *domainAddress.Address) *models.AddressModel {
	return &models.AddressModel{
		ID:         a.ID,
		ContactID:  a.ContactID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func toAddressEntity(m *models.AddressModel) *domainAddress.Address {
	return &domainAddress.Address{
		ID:         m.ID,
		ContactID:  m.ContactID,
		Street:     m.Street,
		City:       m.City,
		Province:   m.Province,
		Country:    m.Country,
		PostalCode: m.PostalCode,
	}
}
