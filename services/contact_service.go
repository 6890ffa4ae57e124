package services

import (
	"fmt"
	"math"

	"portfolio-backend/mailer"
	"portfolio-backend/models"
	"portfolio-backend/repository"
	"portfolio-backend/utils"
)

// ContactService runs the submission pipeline: validate, persist, notify.
type ContactService struct {
	contacts   repository.ContactRepository
	mail       mailer.Sender
	ownerEmail string
}

func NewContactService(contacts repository.ContactRepository, mail mailer.Sender, ownerEmail string) *ContactService {
	return &ContactService{
		contacts:   contacts,
		mail:       mail,
		ownerEmail: ownerEmail,
	}
}

// Submit validates and persists a contact form submission, then fires the
// owner alert and the acknowledgement email. Both notifications are
// best-effort: once the record is persisted, Submit succeeds no matter what
// the transport does.
func (s *ContactService) Submit(input models.ContactCreate, ipAddress, userAgent string) (*models.ContactSummary, error) {
	if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
		return nil, &ValidationErrors{Fields: fieldErrs}
	}

	contact := models.Contact{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		Status:    models.ContactStatusNew,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := s.contacts.Create(&contact); err != nil {
		return nil, fmt.Errorf("persisting contact: %w", err)
	}

	s.notify(contact)

	return &models.ContactSummary{
		ID:    contact.ID,
		Name:  contact.Name,
		Email: contact.Email,
	}, nil
}

// notify sends the owner alert and the acknowledgement independently. A
// failure on one does not suppress the other.
func (s *ContactService) notify(contact models.Contact) {
	if s.ownerEmail != "" {
		subject, body := mailer.OwnerAlert(contact)
		if res := s.mail.Send(s.ownerEmail, subject, body); res.Status == mailer.StatusFailed {
			utils.LogError(res.Err, "Owner notification failed for contact "+contact.ID)
		}
	}

	subject, body := mailer.Acknowledgement(contact)
	if res := s.mail.Send(contact.Email, subject, body); res.Status == mailer.StatusFailed {
		utils.LogError(res.Err, "Acknowledgement email failed for contact "+contact.ID)
	}
}

// List returns a reverse-chronological window of submissions with pagination
// metadata. Pages past the end yield an empty list, not an error.
func (s *ContactService) List(page, limit int) ([]models.ContactListItem, utils.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	records, err := s.contacts.FindPage(skip, limit)
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("listing contacts: %w", err)
	}

	total, err := s.contacts.Count()
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("counting contacts: %w", err)
	}

	items := make([]models.ContactListItem, 0, len(records))
	for _, c := range records {
		items = append(items, c.ListItem())
	}

	pagination := utils.Pagination{
		Current: page,
		Pages:   int(math.Ceil(float64(total) / float64(limit))),
		Total:   total,
	}

	return items, pagination, nil
}

// GetByID returns the full stored record, audit fields included.
func (s *ContactService) GetByID(id string) (*models.Contact, error) {
	return s.contacts.FindByID(id)
}

// UpdateStatus sets the status of a submission. Any of the three statuses is
// reachable from any other: the operation is an unconditional set, not a
// guarded transition.
func (s *ContactService) UpdateStatus(id, status string) (*models.Contact, error) {
	if !models.IsValidContactStatus(status) {
		return nil, NewValidationError("status", "Invalid status value")
	}
	return s.contacts.UpdateStatus(id, status)
}
