package entity

import "github.com/google/uuid"

type Project struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description,omitempty"`
	URL          string    `db:"url" json:"url"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnailUrl,omitempty"`
	CreatedAt    string    `db:"created_at" json:"createdAt"`
	UpdatedAt    string    `db:"updated_at" json:"updatedAt"`
}
