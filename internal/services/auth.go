package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/repos"
	"github.com/neoverse/academy-backend/internal/requestdata"
	"github.com/neoverse/academy-backend/internal/types"
	"github.com/neoverse/academy-backend/internal/utils"
)

type JWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) (*types.User, error)
	// LoginUser resolves identifier as a username first, then as an email.
	// The error is the same whichever step fails.
	LoginUser(ctx context.Context, identifier, password string) (*types.User, *TokenPair, error)
	LogoutUser(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	IssueTokens(ctx context.Context, tx *gorm.DB, user *types.User) (*TokenPair, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           log.With("service", "AuthService"),
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (*types.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if user.Username == "" {
		return nil, fmt.Errorf("%w: a username is required to sign up", ErrBadRequest)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: an email is required to sign up", ErrBadRequest)
	}
	if user.Password == "" {
		return nil, fmt.Errorf("%w: a password is required to sign up", ErrBadRequest)
	}

	usernameTaken, err := as.userRepo.UsernameExists(ctx, nil, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameTaken {
		return nil, fmt.Errorf("%w: username %q is already in use", ErrConflict, user.Username)
	}
	emailTaken, err := as.userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, fmt.Errorf("%w: email %q is already in use", ErrConflict, user.Email)
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.ID = uuid.New()
		if _, err := as.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	as.log.Info("Registered user", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (as *authService) LoginUser(ctx context.Context, identifier, password string) (*types.User, *TokenPair, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: identifier and password are required", ErrBadRequest)
	}

	user, err := as.resolveAccount(ctx, identifier)
	if err != nil {
		return nil, nil, err
	}
	// A missing account, a federated account and a wrong password all fail
	// the same way so the response does not leak account existence.
	if user == nil || !utils.CheckPassword(user.Password, password) {
		return nil, nil, ErrInvalidCredentials
	}

	var pair *TokenPair
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := as.userRepo.TouchLastLogin(ctx, tx, user.ID, now); err != nil {
			return fmt.Errorf("failed to update last login: %w", err)
		}
		user.LastLoginAt = &now
		p, err := as.IssueTokens(ctx, tx, user)
		if err != nil {
			return err
		}
		pair = p
		return nil
	}); err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (as *authService) resolveAccount(ctx context.Context, identifier string) (*types.User, error) {
	byUsername, err := as.userRepo.GetByUsernames(ctx, nil, []string{identifier})
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if len(byUsername) > 0 {
		return byUsername[0], nil
	}
	byEmail, err := as.userRepo.GetByEmails(ctx, nil, []string{strings.ToLower(identifier)})
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if len(byEmail) > 0 {
		return byEmail[0], nil
	}
	return nil, nil
}

func (as *authService) IssueTokens(ctx context.Context, tx *gorm.DB, user *types.User) (*TokenPair, error) {
	accessToken, err := as.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken := uuid.New().String()
	userToken := types.UserToken{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(as.refreshTTL),
	}
	if _, err := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{&userToken}); err != nil {
		return nil, fmt.Errorf("failed to persist user token: %w", err)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(as.accessTTL.Seconds()),
	}, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return fmt.Errorf("%w: no token in request context", ErrBadRequest)
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foundTokens, err := as.userTokenRepo.GetByAccessTokens(ctx, tx, []string{rd.TokenString})
		if err != nil {
			return fmt.Errorf("failed to find user token: %w", err)
		}
		if len(foundTokens) == 0 {
			return nil
		}
		return as.userTokenRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{foundTokens[0].ID})
	})
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	claims := JWTClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti keeps tokens unique even when two logins land in the
			// same second; access_token carries a unique index.
			ID:        uuid.New().String(),
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("invalid or expired token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid user id in token: %w", err)
	}
	rd := &requestdata.RequestData{
		UserID:      userID,
		Email:       claims.Email,
		TokenString: tokenString,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
