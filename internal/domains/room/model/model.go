package model

import "roombook/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldBuilding    = "building"
	FieldFloor       = "floor"
	FieldCapacity    = "capacity"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldStatus      = "status"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// SortableFields maps client sort keys to real columns. Anything outside
// this table sorts by created_at.
var SortableFields = map[string]string{
	"name":      FieldName,
	"building":  FieldBuilding,
	"capacity":  FieldCapacity,
	"createdat": "created_at",
}

// SearchFields are the columns matched by the search query parameter.
var SearchFields = []string{FieldName, FieldBuilding, FieldCategory}

type Room struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Building    string  `db:"building"`
	Floor       int     `db:"floor"`
	Capacity    int     `db:"capacity"`
	Category    string  `db:"category"`
	Description *string `db:"description"`
	Status      Status  `db:"status"`
	model.Metadata
}
