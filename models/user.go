package models

// User is the session identity produced by login/signup. There is no
// stored account record and no credential verification behind it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
