package app

import (
	"time"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/utils"
)

type Config struct {
	JWTSecretKey       string
	SessionSecretKey   string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	TelemetryCSVPath   string
}

// LoadConfig reads configuration from the environment. Secrets have no
// defaults: a missing JWT or session key aborts startup.
func LoadConfig(log *logger.Logger) (Config, error) {
	jwtSecretKey, err := utils.RequireEnv("JWT_SECRET_KEY", log)
	if err != nil {
		return Config{}, err
	}
	sessionSecretKey, err := utils.RequireEnv("SESSION_SECRET_KEY", log)
	if err != nil {
		return Config{}, err
	}
	googleClientID, err := utils.RequireEnv("GOOGLE_CLIENT_ID", log)
	if err != nil {
		return Config{}, err
	}
	googleClientSecret, err := utils.RequireEnv("GOOGLE_CLIENT_SECRET", log)
	if err != nil {
		return Config{}, err
	}

	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	return Config{
		JWTSecretKey:       jwtSecretKey,
		SessionSecretKey:   sessionSecretKey,
		AccessTokenTTL:     time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:    time.Duration(refreshTokenTTLSeconds) * time.Second,
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		GoogleRedirectURL:  utils.GetEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/user/google/auth", log),
		TelemetryCSVPath:   utils.GetEnv("NEOVERSE_LOG_CSV", "./data/neoverse_logs.csv", log),
	}, nil
}
