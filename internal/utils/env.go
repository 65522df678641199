package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
)

func GetEnv(key, defaultVal string, log *logger.Logger) string {
	if log != nil {
		log = log.With("env_var", key)
	}
	val, ok := os.LookupEnv(key)
	if !ok {
		if log != nil {
			log.Debug("Environment variable not found, using default", "default", defaultVal)
		}
		return defaultVal
	}
	return val
}

func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
	if log != nil {
		log = log.With("env_var", key)
	}
	valStr, ok := os.LookupEnv(key)
	if !ok {
		if log != nil {
			log.Debug("Environment variable not found, using default", "default", defaultVal)
		}
		return defaultVal
	}
	i, err := strconv.Atoi(valStr)
	if err != nil {
		if log != nil {
			log.Debug("Environment variable could not be parsed as int, using default", "provided", valStr, "default", defaultVal, "error", err)
		}
		return defaultVal
	}
	return i
}

// RequireEnv is for secrets: there is no safe default to fall back to.
func RequireEnv(key string, log *logger.Logger) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		if log != nil {
			log.Error("Required environment variable is not set", "env_var", key)
		}
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return val, nil
}
