package model

import "roombook/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)

// SortableFields maps client sort keys to real columns. Anything outside
// this table sorts by created_at.
var SortableFields = map[string]string{
	"fullname":  FieldFullName,
	"email":     FieldEmail,
	"createdat": "created_at",
}

// SearchFields are the columns matched by the search query parameter.
var SearchFields = []string{FieldFullName, FieldEmail}

type User struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Role     string `db:"role"`
	model.Metadata
}
