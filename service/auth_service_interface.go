package service

import (
	"context"

	"github.com/GeraldTgit/magingwais/models"
)

// AuthServiceInterface defines the identity operations used by the
// controllers: the Google token exchange and session token parsing.
type AuthServiceInterface interface {
	SignIn(ctx context.Context, googleIDToken string) (*models.GoogleAuthResponse, error)
	ParseSessionToken(tokenString string) (string, error)
}
