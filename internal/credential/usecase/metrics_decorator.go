package usecase

import (
	"context"
	"time"

	"github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/metrics"
)

// metricsDomain labels all credential-protection operations.
const metricsDomain = "credential"

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(
	useCase CredentialUseCase,
	m metrics.BusinessMetrics,
) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (c *credentialUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	ok bool,
) {
	status := "success"
	if !ok {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// HashPassword records metrics for password hashing operations.
func (c *credentialUseCaseWithMetrics) HashPassword(
	ctx context.Context,
	password string,
) (string, error) {
	start := time.Now()
	hashed, err := c.next.HashPassword(ctx, password)
	c.record(ctx, "password_hash", start, err == nil)
	return hashed, err
}

// ComparePassword records metrics for password verification operations.
// A mismatch is a normal outcome, not an error, so status stays "success".
func (c *credentialUseCaseWithMetrics) ComparePassword(
	ctx context.Context,
	password, hashed string,
) bool {
	start := time.Now()
	match := c.next.ComparePassword(ctx, password, hashed)
	c.record(ctx, "password_compare", start, true)
	return match
}

// EncryptPassword records metrics for credential encryption operations.
func (c *credentialUseCaseWithMetrics) EncryptPassword(
	ctx context.Context,
	password string,
) (string, error) {
	start := time.Now()
	encrypted, err := c.next.EncryptPassword(ctx, password)
	c.record(ctx, "credential_encrypt", start, err == nil)
	return encrypted, err
}

// DecryptPassword records metrics for credential decryption operations.
func (c *credentialUseCaseWithMetrics) DecryptPassword(
	ctx context.Context,
	encrypted string,
) (string, error) {
	start := time.Now()
	plaintext, err := c.next.DecryptPassword(ctx, encrypted)
	c.record(ctx, "credential_decrypt", start, err == nil)
	return plaintext, err
}

// GenerateResetToken records metrics for reset-token generation.
func (c *credentialUseCaseWithMetrics) GenerateResetToken(ctx context.Context) (string, error) {
	start := time.Now()
	token, err := c.next.GenerateResetToken(ctx)
	c.record(ctx, "reset_token_generate", start, err == nil)
	return token, err
}

// GenerateRandomPassword records metrics for temporary-password generation.
func (c *credentialUseCaseWithMetrics) GenerateRandomPassword(
	ctx context.Context,
	length int,
) string {
	start := time.Now()
	password := c.next.GenerateRandomPassword(ctx, length)
	c.record(ctx, "random_password_generate", start, true)
	return password
}

// GenerateOTP records metrics for one-time-code generation.
func (c *credentialUseCaseWithMetrics) GenerateOTP(ctx context.Context) (string, error) {
	start := time.Now()
	otp, err := c.next.GenerateOTP(ctx)
	c.record(ctx, "otp_generate", start, err == nil)
	return otp, err
}
