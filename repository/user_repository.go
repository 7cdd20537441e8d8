package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/GeraldTgit/magingwais/db"
	"github.com/GeraldTgit/magingwais/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// Upsert inserts the user on first sign-in and refreshes the Google
// profile fields on every later one. The nickname is user-chosen and
// never overwritten here.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	log.Printf("📝 Upsert: google_id=%s, email=%s", user.GoogleID, user.Email)

	query := `
		INSERT INTO users (google_id, name, email, email_verified, picture_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (google_id)
		DO UPDATE SET name = EXCLUDED.name,
		              email = EXCLUDED.email,
		              email_verified = EXCLUDED.email_verified,
		              picture_url = EXCLUDED.picture_url
		RETURNING google_id, name, COALESCE(nickname, ''), email, email_verified, COALESCE(picture_url, '')
	`

	var saved models.User
	err := db.DB.QueryRowContext(ctx, query,
		user.GoogleID, user.Name, user.Email, user.EmailVerified, user.PictureURL).
		Scan(&saved.GoogleID, &saved.Name, &saved.Nickname, &saved.Email, &saved.EmailVerified, &saved.PictureURL)
	if err != nil {
		log.Printf("❌ Upsert: Error upserting user: %v", err)
		return nil, storeErr("upsert user", err)
	}

	log.Printf("✅ Upsert: User %s saved", saved.Email)
	return &saved, nil
}

// GetByGoogleID retrieves a user by the Google subject id
func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	query := `
		SELECT google_id, name, COALESCE(nickname, ''), email, email_verified, COALESCE(picture_url, '')
		FROM users
		WHERE google_id = $1
	`

	var user models.User
	err := db.DB.QueryRowContext(ctx, query, googleID).
		Scan(&user.GoogleID, &user.Name, &user.Nickname, &user.Email, &user.EmailVerified, &user.PictureURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", googleID, models.ErrNotFound)
		}
		log.Printf("❌ GetByGoogleID: Error fetching user: %v", err)
		return nil, storeErr("fetch user", err)
	}
	return &user, nil
}
