package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"garutech/internal/domain"
)

type ContactRepo struct{ db *sqlx.DB }

func NewContactRepo(db *sqlx.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Insert(m domain.ContactMessage) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`
	  INSERT INTO contacts(id, name, email, phone, subject, message, status, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, 'new', CURRENT_TIMESTAMP)
	`, m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// List returns messages newest first, optionally restricted to one status.
func (r *ContactRepo) List(status string) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	if status != "" {
		err := r.db.Select(&out, `
		  SELECT id, name, email, COALESCE(phone,'') AS phone, COALESCE(subject,'') AS subject, message, status, created_at
		  FROM contacts WHERE status = ?
		  ORDER BY datetime(created_at) DESC
		`, status)
		return out, err
	}
	err := r.db.Select(&out, `
	  SELECT id, name, email, COALESCE(phone,'') AS phone, COALESCE(subject,'') AS subject, message, status, created_at
	  FROM contacts
	  ORDER BY datetime(created_at) DESC
	`)
	return out, err
}

func (r *ContactRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE contacts SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
