package usecase

import (
	"context"
	"log/slog"

	credentialDomain "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/domain"
	credentialService "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/credential/service"
)

// credentialUseCase implements CredentialUseCase over the credential services.
type credentialUseCase struct {
	cipher         *credentialService.Cipher
	primaryHasher  credentialService.PasswordHasher
	bcryptHasher   credentialService.PasswordHasher
	argon2idHasher credentialService.PasswordHasher
	tokens         credentialService.TokenGenerator
	logger         *slog.Logger
}

// NewCredentialUseCase creates the credential-protection use case.
//
// hashAlgorithm selects the hasher for new hashes ("bcrypt" or "argon2id");
// verification always dispatches on the stored hash encoding, so switching
// the algorithm never invalidates existing hashes. bcryptCost is the work
// factor for new bcrypt hashes.
func NewCredentialUseCase(
	cipher *credentialService.Cipher,
	tokens credentialService.TokenGenerator,
	hashAlgorithm string,
	bcryptCost int,
	logger *slog.Logger,
) (CredentialUseCase, error) {
	bcryptHasher := credentialService.NewBcryptHasher(bcryptCost)
	argon2idHasher := credentialService.NewArgon2idHasher()

	var primary credentialService.PasswordHasher
	switch hashAlgorithm {
	case "bcrypt":
		primary = bcryptHasher
	case "argon2id":
		primary = argon2idHasher
	default:
		return nil, credentialDomain.ErrUnsupportedAlgorithm
	}

	return &credentialUseCase{
		cipher:         cipher,
		primaryHasher:  primary,
		bcryptHasher:   bcryptHasher,
		argon2idHasher: argon2idHasher,
		tokens:         tokens,
		logger:         logger,
	}, nil
}

// HashPassword produces a salted one-way hash of the password using the
// configured algorithm.
func (uc *credentialUseCase) HashPassword(_ context.Context, password string) (string, error) {
	return uc.primaryHasher.Hash(password)
}

// ComparePassword verifies the password against the stored hash, dispatching
// on the hash encoding.
func (uc *credentialUseCase) ComparePassword(_ context.Context, password, hashed string) bool {
	if credentialService.IsArgon2idHash(hashed) {
		return uc.argon2idHasher.Verify(password, hashed)
	}
	return uc.bcryptHasher.Verify(password, hashed)
}

// EncryptPassword reversibly encrypts the credential.
func (uc *credentialUseCase) EncryptPassword(_ context.Context, password string) (string, error) {
	return uc.cipher.Encrypt(password)
}

// DecryptPassword decrypts a stored credential.
func (uc *credentialUseCase) DecryptPassword(_ context.Context, encrypted string) (string, error) {
	return uc.cipher.Decrypt(encrypted)
}

// GenerateResetToken returns a fresh password-reset token.
func (uc *credentialUseCase) GenerateResetToken(_ context.Context) (string, error) {
	return uc.tokens.ResetToken()
}

// GenerateRandomPassword returns a fresh temporary password.
func (uc *credentialUseCase) GenerateRandomPassword(_ context.Context, length int) string {
	return uc.tokens.TempPassword(length)
}

// GenerateOTP returns a fresh 6-digit one-time code.
func (uc *credentialUseCase) GenerateOTP(_ context.Context) (string, error) {
	return uc.tokens.OTP()
}
