// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// EncryptionKey is the seed for the credential encryption key. It may be a
	// 64-character hex string (used as-is) or any other string (normalized
	// deterministically). Absence is legal only when DevMode is enabled.
	EncryptionKey string
	// DevMode enables the built-in fallback encryption key. Never enable this
	// in production: the fallback key is public knowledge.
	DevMode bool

	// CipherAlgorithm selects the AEAD for credential encryption
	// ("aes-gcm" or "chacha20-poly1305"). Only aes-gcm can read values
	// written by earlier releases.
	CipherAlgorithm string

	// PasswordHashAlgorithm selects the hasher for new password hashes
	// ("bcrypt" or "argon2id"). Verification auto-detects the algorithm from
	// the stored hash, so this can be switched without rehashing.
	PasswordHashAlgorithm string
	// BcryptCost is the bcrypt work factor used for new hashes.
	BcryptCost int

	// GeneratedPasswordLength is the length of generated temporary passwords.
	GeneratedPasswordLength int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Encryption
		EncryptionKey:   env.GetString("ENCRYPTION_KEY", ""),
		DevMode:         env.GetBool("DEV_MODE", false),
		CipherAlgorithm: env.GetString("CIPHER_ALGORITHM", "aes-gcm"),

		// Password hashing
		PasswordHashAlgorithm: env.GetString("PASSWORD_HASH_ALGORITHM", "bcrypt"),
		BcryptCost:            env.GetInt("BCRYPT_COST", 10),

		// Token generation
		GeneratedPasswordLength: env.GetInt("GENERATED_PASSWORD_LENGTH", 12),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "credentials"),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
