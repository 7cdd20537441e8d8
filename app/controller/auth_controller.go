package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/GeraldTgit/magingwais/models"
	"github.com/GeraldTgit/magingwais/service"
)

// AuthController handles the Google sign-in exchange
type AuthController struct {
	auth service.AuthServiceInterface
}

// NewAuthController creates a new AuthController
func NewAuthController(auth service.AuthServiceInterface) *AuthController {
	return &AuthController{auth: auth}
}

// GoogleAuth handles POST /api/auth/google
// Verifies a Google ID token, upserts the user and returns a session token
func (c *AuthController) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GoogleAuth: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ GoogleAuth: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Token) == "" {
		http.Error(w, "token cannot be empty", http.StatusBadRequest)
		return
	}

	response, err := c.auth.SignIn(r.Context(), req.Token)
	if err != nil {
		log.Printf("❌ GoogleAuth: Sign-in failed: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
