package model

import "time"

// Metadata carries the audit and soft-delete columns every entity shares.
// UpdatedAt stays nil until the first mutation, including soft deletion.
type Metadata struct {
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
	IsDeleted bool       `db:"is_deleted" json:"-"`
}
