package page

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePageRequest carries the metadata plus the initial revision
// text. Creating a page always writes version one.
type CreatePageRequest struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Text  string   `json:"text"`
}

func (r CreatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Text, validation.Required),
	)
}

type UpdatePageRequest struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func (r UpdatePageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
	)
}

type PageDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"created_at"`
}
