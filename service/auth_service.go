package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"

	"github.com/GeraldTgit/magingwais/models"
	"github.com/GeraldTgit/magingwais/repository"
)

const sessionTokenTTL = 24 * time.Hour

// TokenVerifier validates a Google ID token and extracts the profile.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*models.User, error)
}

// googleTokenVerifier verifies ID tokens against Google's certs and
// checks the audience against our OAuth client id.
type googleTokenVerifier struct {
	clientID string
}

// NewGoogleTokenVerifier creates a TokenVerifier for the given OAuth client id
func NewGoogleTokenVerifier(clientID string) TokenVerifier {
	return &googleTokenVerifier{clientID: clientID}
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func (v *googleTokenVerifier) Verify(ctx context.Context, token string) (*models.User, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("google token verification failed: %w: %v", models.ErrInvalidArgument, err)
	}

	verified, _ := payload.Claims["email_verified"].(bool)
	return &models.User{
		GoogleID:      payload.Subject,
		Name:          claimString(payload.Claims, "name"),
		Email:         claimString(payload.Claims, "email"),
		EmailVerified: verified,
		PictureURL:    claimString(payload.Claims, "picture"),
	}, nil
}

// AuthService exchanges Google ID tokens for user identities and
// session tokens. The session token is a signed HS256 JWT whose
// subject is the user's google_id; controllers turn it back into the
// request-scoped actor id. Core logic never reads session state.
type AuthService struct {
	verifier TokenVerifier
	users    repository.UserRepositoryInterface
	secret   []byte
}

// NewAuthService creates a new AuthService
func NewAuthService(verifier TokenVerifier, users repository.UserRepositoryInterface, secret []byte) *AuthService {
	return &AuthService{
		verifier: verifier,
		users:    users,
		secret:   secret,
	}
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// SignIn verifies a Google ID token, upserts the user row and returns
// the profile together with a session token.
func (s *AuthService) SignIn(ctx context.Context, googleIDToken string) (*models.GoogleAuthResponse, error) {
	profile, err := s.verifier.Verify(ctx, googleIDToken)
	if err != nil {
		log.Printf("❌ SignIn: Token verification failed: %v", err)
		return nil, err
	}

	user, err := s.users.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	sessionToken, err := s.issueSessionToken(user.GoogleID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ SignIn: User %s signed in", user.Email)
	return &models.GoogleAuthResponse{
		Status: "success",
		User:   user,
		Token:  sessionToken,
	}, nil
}

func (s *AuthService) issueSessionToken(googleID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   googleID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a session token and returns the actor's
// google_id. Expired or tampered tokens are rejected.
func (s *AuthService) ParseSessionToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w: %v", models.ErrForbidden, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("session token has no subject: %w", models.ErrForbidden)
	}
	return claims.Subject, nil
}
