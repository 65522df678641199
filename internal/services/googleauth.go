package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/repos"
	"github.com/neoverse/academy-backend/internal/types"
	"github.com/neoverse/academy-backend/internal/utils"
)

// GoogleAuthService runs the redirect-based federated login flow: hand the
// browser to Google, exchange the callback code for a verified profile, then
// link to an existing local account by email or create one with the federated
// password sentinel. No account row is written before the profile is confirmed.
type GoogleAuthService interface {
	AuthCodeURL(state string) string
	CompleteLogin(ctx context.Context, code string) (*types.User, *TokenPair, error)
}

type googleAuthService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	authService AuthService
	oauthConfig *oauth2.Config
}

func NewGoogleAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	authService AuthService,
	clientID string,
	clientSecret string,
	redirectURL string,
) GoogleAuthService {
	return &googleAuthService{
		db:          db,
		log:         log.With("service", "GoogleAuthService"),
		userRepo:    userRepo,
		authService: authService,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (gs *googleAuthService) AuthCodeURL(state string) string {
	return gs.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (gs *googleAuthService) CompleteLogin(ctx context.Context, code string) (*types.User, *TokenPair, error) {
	if code == "" {
		return nil, nil, fmt.Errorf("%w: missing authorization code", ErrBadRequest)
	}
	token, err := gs.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: code exchange failed: %v", ErrUpstream, err)
	}
	if !token.Valid() {
		return nil, nil, fmt.Errorf("%w: provider returned an invalid token", ErrUpstream)
	}

	svc, err := oauth2api.NewService(ctx, option.WithHTTPClient(gs.oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to build userinfo client: %v", ErrUpstream, err)
	}
	userinfo, err := svc.Userinfo.V2.Me.Get().Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to fetch user profile: %v", ErrUpstream, err)
	}
	if userinfo.Email == "" {
		return nil, nil, fmt.Errorf("%w: provider profile has no email", ErrUpstream)
	}

	user, err := gs.linkOrCreate(ctx, strings.ToLower(userinfo.Email), userinfo.Name)
	if err != nil {
		return nil, nil, err
	}

	var pair *TokenPair
	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := gs.authService.IssueTokens(ctx, tx, user)
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

func (gs *googleAuthService) linkOrCreate(ctx context.Context, email, displayName string) (*types.User, error) {
	existing, err := gs.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return nil, fmt.Errorf("failed to look up account by email: %w", err)
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	user := &types.User{
		ID:       uuid.New(),
		Username: gs.usernameFor(ctx, email, displayName),
		Email:    email,
		Password: utils.FederatedPasswordSentinel,
	}
	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := gs.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return fmt.Errorf("failed to create federated user: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	gs.log.Info("Created federated user", "user_id", user.ID, "email", email)
	return user, nil
}

func (gs *googleAuthService) usernameFor(ctx context.Context, email, displayName string) string {
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(displayName), " ", "."))
	if base == "" {
		base = strings.SplitN(email, "@", 2)[0]
	}
	taken, err := gs.userRepo.UsernameExists(ctx, nil, base)
	if err != nil || taken {
		return base + "-" + uuid.New().String()[:8]
	}
	return base
}
