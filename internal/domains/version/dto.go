package version

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type AddVersionRequest struct {
	Text string `json:"text"`
}

func (r AddVersionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}

type UpdateVersionRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (r UpdateVersionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.Author, validation.Required),
	)
}

type VersionDTO struct {
	ID        uuid.UUID `json:"id"`
	PageID    int64     `json:"page_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
