package entity

import "github.com/google/uuid"

type Photo struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	TakenAt     *string   `db:"taken_at" json:"takenAt,omitempty"`
	FileName    string    `db:"file_name" json:"fileName"`
	CreatedAt   string    `db:"created_at" json:"createdAt"`
}
