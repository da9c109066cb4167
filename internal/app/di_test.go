package app

import (
	"context"
	"testing"

	"github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/config"
	credentialDomain "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		EncryptionKey:           "6368616e676520746869732070617373776f726420746f206120736563726574",
		CipherAlgorithm:         "aes-gcm",
		PasswordHashAlgorithm:   "bcrypt",
		BcryptCost:              4,
		GeneratedPasswordLength: 12,
		LogLevel:                "info",
		MetricsEnabled:          false,
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := testConfig()

	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}

	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "debug",
	}

	container := NewContainer(cfg)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Calling Logger() again should return the same instance (singleton)
	logger2 := container.Logger()
	if logger != logger2 {
		t.Error("expected same logger instance on multiple calls")
	}
}

// TestContainerLoggerDefaultLevel verifies that logger defaults to info level.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "invalid",
	}

	container := NewContainer(cfg)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

// TestContainerCipher verifies cipher construction and singleton behavior.
func TestContainerCipher(t *testing.T) {
	container := NewContainer(testConfig())

	cipher, err := container.Cipher()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cipher == nil {
		t.Fatal("expected non-nil cipher")
	}

	cipher2, err := container.Cipher()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cipher != cipher2 {
		t.Error("expected same cipher instance on multiple calls")
	}

	if cipher.Algorithm() != credentialDomain.AESGCM {
		t.Errorf("expected aes-gcm cipher, got %s", cipher.Algorithm())
	}
}

// TestContainerInitializationErrors verifies that initialization errors are properly handled.
func TestContainerInitializationErrors(t *testing.T) {
	// Missing encryption key outside dev mode
	cfg := testConfig()
	cfg.EncryptionKey = ""
	cfg.DevMode = false

	container := NewContainer(cfg)

	_, err := container.Cipher()
	if err == nil {
		t.Error("expected error when encryption key is missing outside dev mode")
	}

	// Attempting to get the cipher again should return the same error
	_, err2 := container.Cipher()
	if err2 == nil {
		t.Error("expected error on second call to Cipher()")
	}

	// The use case depends on the cipher, so it fails too
	_, err3 := container.CredentialUseCase()
	if err3 == nil {
		t.Error("expected error from CredentialUseCase() with missing key")
	}
}

// TestContainerDevModeFallbackKey verifies the dev-mode fallback key path.
func TestContainerDevModeFallbackKey(t *testing.T) {
	cfg := testConfig()
	cfg.EncryptionKey = ""
	cfg.DevMode = true

	container := NewContainer(cfg)

	cipher, err := container.Cipher()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cipher == nil {
		t.Fatal("expected non-nil cipher")
	}
}

// TestContainerUnsupportedCipherAlgorithm verifies algorithm validation at assembly time.
func TestContainerUnsupportedCipherAlgorithm(t *testing.T) {
	cfg := testConfig()
	cfg.CipherAlgorithm = "des"

	container := NewContainer(cfg)

	_, err := container.Cipher()
	if err == nil {
		t.Error("expected error for unsupported cipher algorithm")
	}
}

// TestContainerCredentialUseCase verifies full use-case assembly.
func TestContainerCredentialUseCase(t *testing.T) {
	container := NewContainer(testConfig())

	uc, err := container.CredentialUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc == nil {
		t.Fatal("expected non-nil use case")
	}

	ctx := context.Background()
	encrypted, err := uc.EncryptPassword(ctx, "di-test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decrypted, err := uc.DecryptPassword(ctx, encrypted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decrypted != "di-test-secret" {
		t.Errorf("expected 'di-test-secret', got '%s'", decrypted)
	}
}

// TestContainerMetricsDisabled verifies the no-op path when metrics are off.
func TestContainerMetricsDisabled(t *testing.T) {
	container := NewContainer(testConfig())

	bm, err := container.BusinessMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bm == nil {
		t.Fatal("expected non-nil business metrics")
	}

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider != nil {
		t.Error("expected nil metrics provider when metrics are disabled")
	}
}

// TestContainerMetricsEnabled verifies provider construction when metrics are on.
func TestContainerMetricsEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = true
	cfg.MetricsNamespace = "credentials"

	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider == nil {
		t.Fatal("expected non-nil metrics provider")
	}

	if err := container.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

// TestContainerLazyInitialization verifies that components are only initialized when accessed.
func TestContainerLazyInitialization(t *testing.T) {
	container := NewContainer(testConfig())

	// At this point, no components should be initialized
	if container.logger != nil {
		t.Error("expected logger to be nil before first access")
	}
	if container.cipher != nil {
		t.Error("expected cipher to be nil before first access")
	}

	// Access logger
	logger := container.Logger()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Now logger should be initialized
	if container.logger == nil {
		t.Error("expected logger to be initialized after access")
	}
}

// TestContainerShutdownWithoutMetrics verifies shutdown is a no-op before initialization.
func TestContainerShutdownWithoutMetrics(t *testing.T) {
	container := NewContainer(testConfig())

	if err := container.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}
