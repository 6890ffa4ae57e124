package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact statuses
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// IsValidContactStatus reports whether s is one of the three allowed statuses.
func IsValidContactStatus(s string) bool {
	return s == ContactStatusNew || s == ContactStatusRead || s == ContactStatusReplied
}

// Contact represents a contact form submission
// @Description Full contact submission record
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"not null;index"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"size:10;index"`
	IPAddress string    `json:"ipAddress" gorm:"column:ip_address"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_contacts_created_at,sort:desc"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate assigns the identifier and the initial status.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
	return nil
}

// ListItem returns the public view of the record, without the submitter's
// network address and user agent.
func (c Contact) ListItem() ContactListItem {
	return ContactListItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ContactCreate is the request body of a contact form submission
// @Description Contact form submission payload
type ContactCreate struct {
	Name    string `json:"name" example:"Jean Dupont"`
	Email   string `json:"email" example:"jean.dupont@exemple.com"`
	Phone   string `json:"phone,omitempty" example:"+33612345678"`
	Message string `json:"message" example:"J'aimerais discuter d'un projet avec vous."`
}

// ContactSummary is the shape returned to the submitter: never the message
// body, network address or user agent.
type ContactSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactListItem is a submission as shown in the paginated listing
type ContactListItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactStatusUpdate is the request body of a status change
type ContactStatusUpdate struct {
	Status string `json:"status" example:"read"`
}
