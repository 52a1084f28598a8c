package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name       string
		date       *time.Time
		wantStatus ContentStatus
		wantAt     time.Time
	}{
		{"no publish date", nil, StatusPublished, now},
		{"zero publish date", &time.Time{}, StatusPublished, now},
		{"future date", &future, StatusScheduled, future},
		{"past date", &past, StatusPublished, past},
		{"exactly now", &now, StatusPublished, now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, at := DeriveStatus(tt.date, now)
			assert.Equal(t, tt.wantStatus, status)
			assert.True(t, tt.wantAt.Equal(at))
		})
	}
}

func TestContentItem_ApplyKeepsOwnershipAndAttachments(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	item := ContentItem{
		ID:          "content2",
		CreatorID:   "c1",
		Title:       "Old",
		Status:      StatusPublished,
		Attachments: []Attachment{{URL: "#", Name: "source-code.zip"}},
	}

	next := item.Apply(ContentDraft{Title: "New", Type: ContentTypeDownload, TierID: "t3", PublishDate: &future}, now)

	assert.Equal(t, "content2", next.ID)
	assert.Equal(t, "c1", next.CreatorID)
	assert.Equal(t, "New", next.Title)
	assert.Equal(t, "t3", next.TierID)
	assert.Equal(t, StatusScheduled, next.Status)
	assert.Len(t, next.Attachments, 1)

	fresh := ContentItem{}.Apply(ContentDraft{Title: "x", Type: ContentTypePost}, now)
	assert.NotNil(t, fresh.Attachments)
	assert.Equal(t, StatusPublished, fresh.Status)
}
