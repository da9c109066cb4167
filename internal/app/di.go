// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/config"
	credentialDomain "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/domain"
	credentialService "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/service"
	credentialUsecase "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/usecase"
	"github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	cipher *credentialService.Cipher
	tokens credentialService.TokenGenerator

	// Use Cases
	credentialUseCase credentialUsecase.CredentialUseCase

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	metricsInit           sync.Once
	cipherInit            sync.Once
	tokensInit            sync.Once
	credentialUseCaseInit sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// BusinessMetrics returns the business metrics recorder.
// When metrics are disabled it returns a no-op implementation.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.metricsInit.Do(func() {
		if err := c.initMetrics(); err != nil {
			c.initErrors["metrics"] = err
		}
	})
	if err := c.initErrors["metrics"]; err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
// The host application mounts MetricsProvider().Handler() on its /metrics route.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	if _, err := c.BusinessMetrics(); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// Cipher returns the credential cipher.
// The encryption key is resolved once on first access.
func (c *Container) Cipher() (*credentialService.Cipher, error) {
	c.cipherInit.Do(func() {
		cipher, err := c.initCipher()
		if err != nil {
			c.initErrors["cipher"] = err
			return
		}
		c.cipher = cipher
	})
	if err := c.initErrors["cipher"]; err != nil {
		return nil, err
	}
	return c.cipher, nil
}

// TokenGenerator returns the token generator.
func (c *Container) TokenGenerator() credentialService.TokenGenerator {
	c.tokensInit.Do(func() {
		c.tokens = credentialService.NewTokenGenerator()
	})
	return c.tokens
}

// CredentialUseCase returns the credential-protection use case, decorated
// with metrics when enabled.
func (c *Container) CredentialUseCase() (credentialUsecase.CredentialUseCase, error) {
	c.credentialUseCaseInit.Do(func() {
		useCase, err := c.initCredentialUseCase()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
			return
		}
		c.credentialUseCase = useCase
	})
	if err := c.initErrors["credentialUseCase"]; err != nil {
		return nil, err
	}
	return c.credentialUseCase, nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.metricsProvider != nil {
		return c.metricsProvider.Shutdown(ctx)
	}
	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetrics creates the metrics provider and business metrics recorder.
func (c *Container) initMetrics() error {
	if !c.config.MetricsEnabled {
		c.businessMetrics = metrics.NewNoOpBusinessMetrics()
		return nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return err
	}

	businessMetrics, err := metrics.NewBusinessMetrics(
		provider.MeterProvider(),
		c.config.MetricsNamespace,
	)
	if err != nil {
		return err
	}

	c.metricsProvider = provider
	c.businessMetrics = businessMetrics
	return nil
}

// initCipher resolves the encryption key and creates the credential cipher.
func (c *Container) initCipher() (*credentialService.Cipher, error) {
	alg, err := credentialDomain.ParseAlgorithm(c.config.CipherAlgorithm)
	if err != nil {
		return nil, err
	}

	key, err := credentialDomain.ResolveKeyMaterial(c.config.EncryptionKey, c.config.DevMode)
	if err != nil {
		return nil, err
	}
	defer credentialDomain.Zero(key)

	if c.config.EncryptionKey == "" {
		c.Logger().Warn("using built-in development encryption key; unsafe for production")
	}

	return credentialService.NewCipher(key, alg, c.Logger())
}

// initCredentialUseCase assembles the credential use case with its services.
func (c *Container) initCredentialUseCase() (credentialUsecase.CredentialUseCase, error) {
	cipher, err := c.Cipher()
	if err != nil {
		return nil, err
	}

	useCase, err := credentialUsecase.NewCredentialUseCase(
		cipher,
		c.TokenGenerator(),
		c.config.PasswordHashAlgorithm,
		c.config.BcryptCost,
		c.Logger(),
	)
	if err != nil {
		return nil, err
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	return credentialUsecase.NewCredentialUseCaseWithMetrics(useCase, businessMetrics), nil
}
