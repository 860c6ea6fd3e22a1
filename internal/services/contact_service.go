package services

import (
	"log"

	"garutech/internal/domain"
	"garutech/internal/repos"
)

type ContactService struct {
	Repo *repos.ContactRepo
	// Inbox address the notification hook targets.
	AdminEmail string
}

func NewContactService(r *repos.ContactRepo) *ContactService {
	return &ContactService{Repo: r, AdminEmail: "admin@garutech.test"}
}

// Submit stores the message and fires the notification hook. Notification
// failure never fails the submission.
func (s *ContactService) Submit(m domain.ContactMessage) (string, error) {
	id, err := s.Repo.Insert(m)
	if err != nil {
		return "", err
	}
	s.notify(m)
	return id, nil
}

// notify is a stand-in for an outbound mail integration; for now the
// notification is just logged.
func (s *ContactService) notify(m domain.ContactMessage) {
	log.Printf("[contact] notify %s: message from %s <%s> subject=%q", s.AdminEmail, m.Name, m.Email, m.Subject)
}

func (s *ContactService) List(status string) ([]domain.ContactMessage, error) {
	return s.Repo.List(status)
}

func (s *ContactService) UpdateStatus(id, status string) error {
	return s.Repo.UpdateStatus(id, status)
}
