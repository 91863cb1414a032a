package page

import (
	"strings"
	"time"
)

// Page is the wiki page metadata. Revision content lives in the
// version domain; a page only carries identity, title, tags and
// provenance.
type Page struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeTags trims, drops empties and de-duplicates while keeping
// first-seen order. Tags behave as a set.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (p *Page) ToDTO() *PageDTO {
	return &PageDTO{
		ID:        p.ID,
		Title:     p.Title,
		Tags:      p.Tags,
		Creator:   p.Creator,
		CreatedAt: p.CreatedAt,
	}
}
