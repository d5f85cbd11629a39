package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/internal/domains/booking/model"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   model.Status
		wantOK bool
	}{
		{name: "pending lowercase", raw: "pending", want: model.StatusPending, wantOK: true},
		{name: "pending mixed case", raw: "Pending", want: model.StatusPending, wantOK: true},
		{name: "approved uppercase", raw: "APPROVED", want: model.StatusApproved, wantOK: true},
		{name: "rejected", raw: "rejected", want: model.StatusRejected, wantOK: true},
		{name: "numeric alias pending", raw: "0", want: model.StatusPending, wantOK: true},
		{name: "numeric alias approved", raw: "1", want: model.StatusApproved, wantOK: true},
		{name: "numeric alias rejected", raw: "2", want: model.StatusRejected, wantOK: true},
		{name: "surrounding whitespace", raw: "  Approved  ", want: model.StatusApproved, wantOK: true},
		{name: "unknown name", raw: "Postponed", wantOK: false},
		{name: "out of range alias", raw: "3", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.ParseStatus(tt.raw)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
