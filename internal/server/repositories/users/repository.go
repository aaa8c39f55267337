// Package users is the credential store gateway: a narrow view over the user
// collection keyed by email.
package users

import (
	"context"

	"github.com/dmitrijs2005/wordbridge/internal/server/models"
)

// Repository persists users.
//
// Create reports common.ErrorAlreadyExists when the email is taken (the store
// enforces uniqueness) and common.ErrorNotAcknowledged when the write was not
// durably acknowledged. GetUserByEmail reports common.ErrorNotFound.
type Repository interface {
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
