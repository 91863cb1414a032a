package version

import (
	"time"

	"github.com/google/uuid"
)

// PageVersion is one revision of a page's text. Versions reference
// their page by id only; deleting a page leaves its history intact.
// Ordering is by CreatedAt, never by insertion order.
type PageVersion struct {
	ID        uuid.UUID `json:"id"`
	PageID    int64     `json:"page_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func (v *PageVersion) ToDTO() *VersionDTO {
	return &VersionDTO{
		ID:        v.ID,
		PageID:    v.PageID,
		Text:      v.Text,
		Author:    v.Author,
		CreatedAt: v.CreatedAt,
	}
}
