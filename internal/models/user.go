package models

// User is a stored credential pair. Passwords are kept exactly as
// entered; hashing them is a known follow-up outside the current
// storage format.
type User struct {
	Username string
	Password string
}
