package user

// User is owned by the identity store. This service only reads it.
type User struct {
	ID       int64
	Username string
	FullName string
	JobTitle string
}
