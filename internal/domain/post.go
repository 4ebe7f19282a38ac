package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a tenant whose posts we collect metrics for.
type Organization struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// PostRecord is a published piece of content on one platform. It is owned by
// the publishing subsystem; this pipeline only reads it.
type PostRecord struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Platform       Platform
	PlatformPostID string
	Content        string
	MediaURL       string // empty when the post has no media attachment
	AccessToken    string
	PublishedAt    time.Time
}

// HasMedia reports whether the post carries a media attachment.
func (p *PostRecord) HasMedia() bool {
	return p.MediaURL != ""
}
