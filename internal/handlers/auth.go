package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/services"
	"github.com/neoverse/academy-backend/internal/types"
)

const oauthStateSessionKey = "oauthstate"

type AuthHandler struct {
	log           *logger.Logger
	authService   services.AuthService
	googleService services.GoogleAuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService, googleService services.GoogleAuthService) *AuthHandler {
	return &AuthHandler{
		log:           log.With("handler", "AuthHandler"),
		authService:   authService,
		googleService: googleService,
	}
}

// POST /user/signup
func (ah *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid request body"))
		return
	}
	user := types.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	created, err := ah.authService.RegisterUser(c.Request.Context(), &user)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": created, "redirect": "/user/login"})
}

// POST /user/login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid request body"))
		return
	}
	user, pair, err := ah.authService.LoginUser(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_in":    pair.ExpiresIn,
	})
}

// POST /user/logout
func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.LogoutUser(c.Request.Context()); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "logged out successfully"})
}

// GET /user/google/login
func (ah *AuthHandler) GoogleLogin(c *gin.Context) {
	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		RespondError(c, http.StatusInternalServerError, "internal", fmt.Errorf("failed to generate state"))
		return
	}
	state := base64.URLEncoding.EncodeToString(stateBytes)

	session := sessions.Default(c)
	session.Set(oauthStateSessionKey, state)
	if err := session.Save(); err != nil {
		ah.log.Error("Failed to save oauth state", "error", err)
		RespondError(c, http.StatusInternalServerError, "internal", fmt.Errorf("failed to save session"))
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, ah.googleService.AuthCodeURL(state))
}

// GET /user/google/auth
func (ah *AuthHandler) GoogleCallback(c *gin.Context) {
	session := sessions.Default(c)
	storedState := session.Get(oauthStateSessionKey)
	queryState := c.Query("state")
	if queryState == "" || storedState == nil || storedState.(string) != queryState {
		ah.log.Warn("OAuth state mismatch", "query_state", queryState)
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("invalid state parameter"))
		return
	}
	session.Delete(oauthStateSessionKey)
	_ = session.Save()

	user, pair, err := ah.googleService.CompleteLogin(c.Request.Context(), c.Query("code"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_in":    pair.ExpiresIn,
	})
}
