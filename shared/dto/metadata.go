package dto

import (
	"roombook/shared/constant"
	"roombook/shared/model"
	"roombook/shared/timezone"
)

type Metadata struct {
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if model.UpdatedAt != nil {
		updated := timezone.Format(*model.UpdatedAt, constant.DateFormat)
		m.UpdatedAt = &updated
	}
}
