package commands

import (
	"context"
	"fmt"
)

// RunHashPassword hashes a password with the configured algorithm and prints
// the resulting hash. The hash is safe to persist verbatim as opaque text.
func RunHashPassword(ctx context.Context, password string, cmdIO IOTuple) error {
	container := newContainer()
	defer closeContainer(container, container.Logger())

	useCase, err := container.CredentialUseCase()
	if err != nil {
		return err
	}

	hashed, err := useCase.HashPassword(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Fprintln(cmdIO.Writer, hashed)
	return nil
}

// RunVerifyPassword checks a password against a stored hash and prints the
// outcome. Exits successfully in both cases; the printed verdict is the result.
func RunVerifyPassword(ctx context.Context, password, hashed string, cmdIO IOTuple) error {
	container := newContainer()
	defer closeContainer(container, container.Logger())

	useCase, err := container.CredentialUseCase()
	if err != nil {
		return err
	}

	if useCase.ComparePassword(ctx, password, hashed) {
		fmt.Fprintln(cmdIO.Writer, "match")
	} else {
		fmt.Fprintln(cmdIO.Writer, "no match")
	}
	return nil
}

// RunEncrypt encrypts a credential value and prints the iv:tag:ciphertext
// wire form. The output must be persisted verbatim to remain decryptable.
func RunEncrypt(ctx context.Context, value string, cmdIO IOTuple) error {
	container := newContainer()
	defer closeContainer(container, container.Logger())

	useCase, err := container.CredentialUseCase()
	if err != nil {
		return err
	}

	encrypted, err := useCase.EncryptPassword(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}

	fmt.Fprintln(cmdIO.Writer, encrypted)
	return nil
}

// RunDecrypt decrypts a stored credential value and prints the plaintext.
func RunDecrypt(ctx context.Context, value string, cmdIO IOTuple) error {
	container := newContainer()
	defer closeContainer(container, container.Logger())

	useCase, err := container.CredentialUseCase()
	if err != nil {
		return err
	}

	plaintext, err := useCase.DecryptPassword(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to decrypt value: %w", err)
	}

	fmt.Fprintln(cmdIO.Writer, plaintext)
	return nil
}
