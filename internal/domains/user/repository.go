package user

import "context"

// Repository is the account data access contract.
type Repository interface {
	// Create persists a new account; the id is generated by the caller.
	Create(ctx context.Context, u *User) error

	// FindByUsername returns ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsernameOrEmail is the uniqueness pre-check for signup:
	// true when any account holds the username OR the email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
