package model

// User is the named-person payload accepted and echoed by the API.
//
// The fields are pointers so that a JSON null (or a missing key) can be told
// apart from an empty string during validation.
type User struct {
	FirstName *string `json:"first_name" binding:"required,personname"`
	LastName  *string `json:"last_name" binding:"required,personname"`
}

// NewUser is a convenience constructor, mostly for tests and callers that
// already hold plain strings.
func NewUser(first, last string) *User {
	return &User{FirstName: &first, LastName: &last}
}
