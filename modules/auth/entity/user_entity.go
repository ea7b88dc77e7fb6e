package entity

import "github.com/google/uuid"

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    string    `db:"created_at" json:"createdAt"`
}
