package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RunGenerateKey generates a cryptographically secure 32-byte encryption key
// and prints it as an ENCRYPTION_KEY environment variable.
//
// A 64-character hex key is used by key derivation as-is (no normalization),
// so keys produced here carry the full 256 bits of entropy. Rotating the key
// makes previously encrypted values undecryptable; re-encrypt them first.
func RunGenerateKey(cmdIO IOTuple) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	fmt.Fprintln(cmdIO.Writer, "# Credential encryption key")
	fmt.Fprintln(cmdIO.Writer, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(cmdIO.Writer)
	fmt.Fprintf(cmdIO.Writer, "ENCRYPTION_KEY=\"%s\"\n", hex.EncodeToString(key))

	// Zero out the key from memory for security
	for i := range key {
		key[i] = 0
	}

	return nil
}

// RunGenerateToken generates a password-reset token and prints it.
func RunGenerateToken(ctx context.Context, cmdIO IOTuple) error {
	container := newContainer()
	defer closeContainer(container, container.Logger())

	useCase, err := container.CredentialUseCase()
	if err != nil {
		return err
	}

	token, err := useCase.GenerateResetToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Fprintln(cmdIO.Writer, token)
	return nil
}

// RunGeneratePassword generates a temporary password and prints it.
// A non-positive length falls back to the configured default.
func RunGeneratePassword(ctx context.Context, length int, cmdIO IOTuple) error {
	container := newContainer()
	defer closeContainer(container, container.Logger())

	if length < 1 {
		length = container.Config().GeneratedPasswordLength
	}

	useCase, err := container.CredentialUseCase()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmdIO.Writer, useCase.GenerateRandomPassword(ctx, length))
	return nil
}

// RunGenerateOTP generates a 6-digit one-time code and prints it.
func RunGenerateOTP(ctx context.Context, cmdIO IOTuple) error {
	container := newContainer()
	defer closeContainer(container, container.Logger())

	useCase, err := container.CredentialUseCase()
	if err != nil {
		return err
	}

	otp, err := useCase.GenerateOTP(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	fmt.Fprintln(cmdIO.Writer, otp)
	return nil
}
