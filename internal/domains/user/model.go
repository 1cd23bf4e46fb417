package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. Username and email are kept unique by a
// pre-check in the signup flow, not by a store constraint. Accounts are
// never updated or deleted; signup creates them, login reads them.
type User struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"`
	Email    string    `db:"email" json:"email"`

	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ToDTO strips everything a signup response should not carry.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
