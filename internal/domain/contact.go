package domain

// Contact message lifecycle states.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

type ContactMessage struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone,omitempty"`
	Subject   string `db:"subject" json:"subject"`
	Message   string `db:"message" json:"message"`
	Status    string `db:"status" json:"status"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}
