package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ListActive(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) (*User, error)
	SoftDelete(ctx context.Context, id int64) error
}
