package domain

// User is a back-office account. The storefront itself needs no login;
// accounts exist only for the admin routes.
type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}
