package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	credentialDomain "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/domain"
	"github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/usecase"
)

type recordedOperation struct {
	domain    string
	operation string
	status    string
}

// recordingMetrics captures RecordOperation/RecordDuration calls for assertions.
type recordingMetrics struct {
	mu         sync.Mutex
	operations []recordedOperation
	durations  []recordedOperation
}

func (r *recordingMetrics) RecordOperation(_ context.Context, domain, operation, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, recordedOperation{domain, operation, status})
}

func (r *recordingMetrics) RecordDuration(
	_ context.Context,
	domain, operation string,
	_ time.Duration,
	status string,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.durations = append(r.durations, recordedOperation{domain, operation, status})
}

func (r *recordingMetrics) last(t *testing.T) recordedOperation {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.operations)
	require.Len(t, r.durations, len(r.operations))
	return r.operations[len(r.operations)-1]
}

func TestCredentialUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	newDecorated := func(t *testing.T) (usecase.CredentialUseCase, *recordingMetrics) {
		t.Helper()
		recorder := &recordingMetrics{}
		return usecase.NewCredentialUseCaseWithMetrics(newTestUseCase(t, "bcrypt"), recorder), recorder
	}

	t.Run("hash password records success", func(t *testing.T) {
		uc, recorder := newDecorated(t)

		_, err := uc.HashPassword(ctx, "Abcdef1!")
		require.NoError(t, err)

		op := recorder.last(t)
		assert.Equal(t, "credential", op.domain)
		assert.Equal(t, "password_hash", op.operation)
		assert.Equal(t, "success", op.status)
	})

	t.Run("compare password mismatch still records success", func(t *testing.T) {
		uc, recorder := newDecorated(t)

		hashed, err := uc.HashPassword(ctx, "Abcdef1!")
		require.NoError(t, err)
		assert.False(t, uc.ComparePassword(ctx, "wrong-password", hashed))

		op := recorder.last(t)
		assert.Equal(t, "password_compare", op.operation)
		assert.Equal(t, "success", op.status)
	})

	t.Run("encrypt and decrypt record success", func(t *testing.T) {
		uc, recorder := newDecorated(t)

		encrypted, err := uc.EncryptPassword(ctx, "broker-api-secret")
		require.NoError(t, err)
		assert.Equal(t, "credential_encrypt", recorder.last(t).operation)

		_, err = uc.DecryptPassword(ctx, encrypted)
		require.NoError(t, err)

		op := recorder.last(t)
		assert.Equal(t, "credential_decrypt", op.operation)
		assert.Equal(t, "success", op.status)
	})

	t.Run("failed operations record error status", func(t *testing.T) {
		uc, recorder := newDecorated(t)

		_, err := uc.EncryptPassword(ctx, "")
		assert.ErrorIs(t, err, credentialDomain.ErrEmptySecret)

		op := recorder.last(t)
		assert.Equal(t, "credential_encrypt", op.operation)
		assert.Equal(t, "error", op.status)

		_, err = uc.DecryptPassword(ctx, "nothex:nothex:nothex")
		assert.ErrorIs(t, err, credentialDomain.ErrDecryptionFailed)

		op = recorder.last(t)
		assert.Equal(t, "credential_decrypt", op.operation)
		assert.Equal(t, "error", op.status)
	})

	t.Run("generators record their operations", func(t *testing.T) {
		uc, recorder := newDecorated(t)

		_, err := uc.GenerateResetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "reset_token_generate", recorder.last(t).operation)

		uc.GenerateRandomPassword(ctx, 12)
		assert.Equal(t, "random_password_generate", recorder.last(t).operation)

		_, err = uc.GenerateOTP(ctx)
		require.NoError(t, err)
		assert.Equal(t, "otp_generate", recorder.last(t).operation)
	})

	t.Run("results pass through unchanged", func(t *testing.T) {
		uc, _ := newDecorated(t)

		encrypted, err := uc.EncryptPassword(ctx, "pass-through")
		require.NoError(t, err)

		decrypted, err := uc.DecryptPassword(ctx, encrypted)
		require.NoError(t, err)
		assert.Equal(t, "pass-through", decrypted)
	})
}
