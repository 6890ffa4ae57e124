package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/mailer"
	"portfolio-backend/models"
	"portfolio-backend/repository"
)

type fakeRepo struct {
	contacts  []*models.Contact
	createErr error
	listErr   error
	clock     time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeRepo) Create(contact *models.Contact) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.clock = f.clock.Add(time.Minute)
	contact.ID = fmt.Sprintf("contact-%d", len(f.contacts)+1)
	if contact.Status == "" {
		contact.Status = models.ContactStatusNew
	}
	contact.CreatedAt = f.clock
	contact.UpdatedAt = f.clock
	stored := *contact
	f.contacts = append(f.contacts, &stored)
	return nil
}

func (f *fakeRepo) FindByID(id string) (*models.Contact, error) {
	for _, c := range f.contacts {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, repository.ErrContactNotFound
}

func (f *fakeRepo) FindPage(skip, limit int) ([]models.Contact, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	// stored in creation order, newest last
	var page []models.Contact
	for i := len(f.contacts) - 1 - skip; i >= 0 && len(page) < limit; i-- {
		page = append(page, *f.contacts[i])
	}
	return page, nil
}

func (f *fakeRepo) Count() (int64, error) {
	return int64(len(f.contacts)), nil
}

func (f *fakeRepo) UpdateStatus(id, status string) (*models.Contact, error) {
	for _, c := range f.contacts {
		if c.ID == id {
			c.Status = status
			c.UpdatedAt = c.UpdatedAt.Add(time.Minute)
			updated := *c
			return &updated, nil
		}
	}
	return nil, repository.ErrContactNotFound
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	configured bool
	fail       bool
	sent       []sentMail
}

func (f *fakeSender) Send(to, subject, htmlBody string) mailer.Result {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	if !f.configured {
		return mailer.Result{Status: mailer.StatusSkipped}
	}
	if f.fail {
		return mailer.Result{Status: mailer.StatusFailed, Err: errors.New("smtp unreachable")}
	}
	return mailer.Result{Status: mailer.StatusSent, MessageID: "<test@local>"}
}

func (f *fakeSender) Configured() bool {
	return f.configured
}

func (f *fakeSender) Verify() error {
	if !f.configured {
		return mailer.ErrNotConfigured
	}
	return nil
}

func newService(repo *fakeRepo, sender *fakeSender) *ContactService {
	return NewContactService(repo, sender, "owner@example.com")
}

func validInput() models.ContactCreate {
	return models.ContactCreate{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello",
	}
}

func TestSubmit_PersistsAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	sender := &fakeSender{configured: true}
	service := newService(repo, sender)

	summary, err := service.Submit(validInput(), "203.0.113.7", "curl/8.0")

	assert.NoError(t, err)
	assert.Equal(t, "Ada", summary.Name)
	assert.Equal(t, "ada@example.com", summary.Email)
	assert.NotEmpty(t, summary.ID)

	stored, err := repo.FindByID(summary.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, stored.Status)
	assert.Equal(t, "203.0.113.7", stored.IPAddress)
	assert.Equal(t, "curl/8.0", stored.UserAgent)

	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "owner@example.com", sender.sent[0].to)
	assert.Equal(t, "ada@example.com", sender.sent[1].to)
}

func TestSubmit_DistinctIdentifiers(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		summary, err := service.Submit(validInput(), "", "")
		assert.NoError(t, err)
		assert.False(t, seen[summary.ID])
		seen[summary.ID] = true
	}
}

func TestSubmit_ValidationFailurePersistsNothing(t *testing.T) {
	repo := newFakeRepo()
	sender := &fakeSender{configured: true}
	service := newService(repo, sender)

	summary, err := service.Submit(models.ContactCreate{}, "", "")

	assert.Nil(t, summary)
	var validationErrs *ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs.Fields, 3)
	assert.Empty(t, repo.contacts)
	assert.Empty(t, sender.sent)
}

func TestSubmit_NormalizesEmail(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})

	input := validInput()
	input.Email = "Foo@Bar.COM"
	summary, err := service.Submit(input, "", "")

	assert.NoError(t, err)
	assert.Equal(t, "foo@bar.com", summary.Email)

	stored, _ := repo.FindByID(summary.ID)
	assert.Equal(t, "foo@bar.com", stored.Email)
}

func TestSubmit_SucceedsWhenTransportFails(t *testing.T) {
	repo := newFakeRepo()
	sender := &fakeSender{configured: true, fail: true}
	service := newService(repo, sender)

	summary, err := service.Submit(validInput(), "", "")

	assert.NoError(t, err)
	assert.Len(t, sender.sent, 2, "the acknowledgement attempt must not be suppressed by the owner alert failing")

	stored, err := service.GetByID(summary.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, stored.Status)
}

func TestSubmit_SucceedsWhenTransportNotConfigured(t *testing.T) {
	repo := newFakeRepo()
	sender := &fakeSender{configured: false}
	service := newService(repo, sender)

	summary, err := service.Submit(validInput(), "", "")

	assert.NoError(t, err)
	assert.NotNil(t, summary)
}

func TestSubmit_NoOwnerRecipient(t *testing.T) {
	repo := newFakeRepo()
	sender := &fakeSender{configured: true}
	service := NewContactService(repo, sender, "")

	_, err := service.Submit(validInput(), "", "")

	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "ada@example.com", sender.sent[0].to)
}

func TestSubmit_PersistenceFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection refused")
	sender := &fakeSender{configured: true}
	service := newService(repo, sender)

	summary, err := service.Submit(validInput(), "", "")

	assert.Nil(t, summary)
	assert.Error(t, err)
	assert.Empty(t, sender.sent, "no notifications before persistence succeeds")
}

func seedContacts(t *testing.T, service *ContactService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		input := validInput()
		input.Message = fmt.Sprintf("Message %d", i+1)
		_, err := service.Submit(input, "203.0.113.7", "curl/8.0")
		assert.NoError(t, err)
	}
}

func TestList_Pagination(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})
	seedContacts(t, service, 15)

	items, pagination, err := service.List(2, 10)

	assert.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 2, pagination.Current)
	assert.Equal(t, 2, pagination.Pages)
	assert.Equal(t, int64(15), pagination.Total)
}

func TestList_MostRecentFirst(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})
	seedContacts(t, service, 3)

	items, _, err := service.List(1, 10)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Message 3", items[0].Message)
	assert.Equal(t, "Message 1", items[2].Message)
}

func TestList_OutOfRangePage(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})
	seedContacts(t, service, 3)

	items, pagination, err := service.List(5, 10)

	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 5, pagination.Current)
	assert.Equal(t, int64(3), pagination.Total)
}

func TestList_FloorsPageAndLimit(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})
	seedContacts(t, service, 3)

	items, pagination, err := service.List(0, -1)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 1, pagination.Current)
}

func TestGetByID_NotFound(t *testing.T) {
	service := newService(newFakeRepo(), &fakeSender{})

	contact, err := service.GetByID("missing")

	assert.Nil(t, contact)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestUpdateStatus_Success(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})
	summary, _ := service.Submit(validInput(), "", "")

	created, _ := service.GetByID(summary.ID)
	updated, err := service.UpdateStatus(summary.ID, models.ContactStatusRead)

	assert.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})
	summary, _ := service.Submit(validInput(), "", "")

	for _, status := range []string{
		models.ContactStatusReplied,
		models.ContactStatusRead,
		models.ContactStatusNew,
	} {
		updated, err := service.UpdateStatus(summary.ID, status)
		assert.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo, &fakeSender{})
	summary, _ := service.Submit(validInput(), "", "")

	updated, err := service.UpdateStatus(summary.ID, "bogus")

	assert.Nil(t, updated)
	var validationErrs *ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)

	stored, _ := service.GetByID(summary.ID)
	assert.Equal(t, models.ContactStatusNew, stored.Status, "a rejected update must leave the record unchanged")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	service := newService(newFakeRepo(), &fakeSender{})

	updated, err := service.UpdateStatus("missing", models.ContactStatusRead)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}
