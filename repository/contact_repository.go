package repository

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-backend/models"
)

// ErrContactNotFound signals that an identifier resolved to nothing.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository is the persistence contract for contact submissions.
type ContactRepository interface {
	Create(contact *models.Contact) error
	FindByID(id string) (*models.Contact, error)
	FindPage(skip, limit int) ([]models.Contact, error)
	Count() (int64, error)
	UpdateStatus(id, status string) (*models.Contact, error)
}

// GormContactRepository stores contacts in Postgres through GORM.
type GormContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create persists a new submission. The identifier and the timestamps are
// assigned during the insert.
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *GormContactRepository) FindByID(id string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// FindPage returns a window of submissions, most recent first.
func (r *GormContactRepository) FindPage(skip, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Order("created_at DESC").Offset(skip).Limit(limit).Find(&contacts).Error
	return contacts, err
}

func (r *GormContactRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Contact{}).Count(&total).Error
	return total, err
}

// UpdateStatus sets the status of an existing submission and returns the
// updated record. GORM bumps updated_at as part of the update.
func (r *GormContactRepository) UpdateStatus(id, status string) (*models.Contact, error) {
	contact, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(contact).Update("status", status).Error; err != nil {
		return nil, err
	}

	return contact, nil
}
