package model

import (
	"strings"
	"time"

	"roombook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldRoomName  = "room_name"
	FieldBookedBy  = "booked_by"
	FieldPurpose   = "purpose"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldStatus    = "status"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus resolves a client-supplied status. Names match
// case-insensitively and the numeric aliases 0, 1 and 2 are accepted
// for compatibility with older clients.
func ParseStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending", "0":
		return StatusPending, true
	case "approved", "1":
		return StatusApproved, true
	case "rejected", "2":
		return StatusRejected, true
	default:
		return "", false
	}
}

// SortableFields maps client sort keys to real columns. Anything outside
// this table sorts by created_at.
var SortableFields = map[string]string{
	"starttime": FieldStartTime,
	"roomname":  FieldRoomName,
	"bookedby":  FieldBookedBy,
	"createdat": "created_at",
}

// SearchFields are the columns matched by the search query parameter.
var SearchFields = []string{FieldRoomName, FieldBookedBy}

type Booking struct {
	ID        string    `db:"id"`
	RoomName  string    `db:"room_name"`
	BookedBy  string    `db:"booked_by"`
	Purpose   *string   `db:"purpose"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Status    Status    `db:"status"`
	model.Metadata
}
