package commands

import (
	"bytes"
	"context"
	"encoding/hex"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// setTestEnv points the commands at a test configuration so they never pick up
// a developer's real environment or .env file.
func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENCRYPTION_KEY", "6368616e676520746869732070617373776f726420746f206120736563726574")
	t.Setenv("CIPHER_ALGORITHM", "aes-gcm")
	t.Setenv("PASSWORD_HASH_ALGORITHM", "bcrypt")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRunGenerateKey(t *testing.T) {
	var out bytes.Buffer
	err := RunGenerateKey(IOTuple{Writer: &out})

	require.NoError(t, err)
	require.Contains(t, out.String(), "ENCRYPTION_KEY=\"")

	// Extract the key and verify it decodes to 32 random bytes.
	matches := regexp.MustCompile(`ENCRYPTION_KEY="([0-9a-f]+)"`).FindStringSubmatch(out.String())
	require.Len(t, matches, 2)

	key, err := hex.DecodeString(matches[1])
	require.NoError(t, err)
	require.Len(t, key, 32)
}

func TestRunGenerateToken(t *testing.T) {
	setTestEnv(t)

	var out bytes.Buffer
	err := RunGenerateToken(context.Background(), IOTuple{Writer: &out})

	require.NoError(t, err)

	token := strings.TrimSpace(out.String())
	require.Len(t, token, 64)

	_, err = hex.DecodeString(token)
	require.NoError(t, err)
}

func TestRunGeneratePassword(t *testing.T) {
	setTestEnv(t)

	t.Run("explicit-length", func(t *testing.T) {
		var out bytes.Buffer
		err := RunGeneratePassword(context.Background(), 20, IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Len(t, strings.TrimSpace(out.String()), 20)
	})

	t.Run("default-length-from-config", func(t *testing.T) {
		t.Setenv("GENERATED_PASSWORD_LENGTH", "16")

		var out bytes.Buffer
		err := RunGeneratePassword(context.Background(), 0, IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Len(t, strings.TrimSpace(out.String()), 16)
	})
}

func TestRunGenerateOTP(t *testing.T) {
	setTestEnv(t)

	var out bytes.Buffer
	err := RunGenerateOTP(context.Background(), IOTuple{Writer: &out})

	require.NoError(t, err)
	require.Regexp(t, `^[1-9][0-9]{5}$`, strings.TrimSpace(out.String()))
}
