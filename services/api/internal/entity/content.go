package entity

import "time"

type ContentType string

const (
	ContentTypeVideo    ContentType = "video"
	ContentTypeDownload ContentType = "download"
	ContentTypePost     ContentType = "post"
)

type ContentStatus string

const (
	StatusPublished ContentStatus = "published"
	StatusDraft     ContentStatus = "draft"
	StatusScheduled ContentStatus = "scheduled"
)

type Attachment struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type ContentItem struct {
	ID          string        `json:"id"`
	CreatorID   string        `json:"creatorId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        ContentType   `json:"type"`
	TierID      string        `json:"tierId"`
	PublishedAt time.Time     `json:"publishedAt"`
	Status      ContentStatus `json:"status"`
	Attachments []Attachment  `json:"attachments"`
}

// ContentDraft carries the editable fields of a content item.
type ContentDraft struct {
	Title       string
	Description string
	Type        ContentType
	TierID      string
	PublishDate *time.Time
}

// DeriveStatus fixes the publication status at write time: scheduled when
// publishDate is strictly in the future, published otherwise. The returned
// time is the publish date, or now when none was given.
func DeriveStatus(publishDate *time.Time, now time.Time) (ContentStatus, time.Time) {
	if publishDate == nil || publishDate.IsZero() {
		return StatusPublished, now
	}
	if publishDate.After(now) {
		return StatusScheduled, *publishDate
	}
	return StatusPublished, *publishDate
}

// Apply overwrites the editable fields of c with d and re-derives the status.
func (c ContentItem) Apply(d ContentDraft, now time.Time) ContentItem {
	c.Title = d.Title
	c.Description = d.Description
	c.Type = d.Type
	c.TierID = d.TierID
	c.Status, c.PublishedAt = DeriveStatus(d.PublishDate, now)
	if c.Attachments == nil {
		c.Attachments = []Attachment{}
	}
	return c
}
