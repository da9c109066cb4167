package service

import (
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_ResetToken(t *testing.T) {
	generator := NewTokenGenerator()

	t.Run("token is 64 hex characters", func(t *testing.T) {
		token, err := generator.ResetToken()
		require.NoError(t, err)

		assert.Len(t, token, 64)
		_, err = hex.DecodeString(token)
		assert.NoError(t, err)
	})

	t.Run("1000 consecutive tokens are distinct", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			token, err := generator.ResetToken()
			require.NoError(t, err)

			_, dup := seen[token]
			require.False(t, dup, "duplicate token at iteration %d", i)
			seen[token] = struct{}{}
		}
	})
}

func TestTokenGenerator_TempPassword(t *testing.T) {
	generator := NewTokenGenerator()

	t.Run("respects requested length", func(t *testing.T) {
		for _, length := range []int{1, 8, 12, 64} {
			assert.Len(t, generator.TempPassword(length), length)
		}
	})

	t.Run("non-positive length falls back to default", func(t *testing.T) {
		assert.Len(t, generator.TempPassword(0), DefaultTempPasswordLength)
		assert.Len(t, generator.TempPassword(-5), DefaultTempPasswordLength)
	})

	t.Run("only uses alphabet characters", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			password := generator.TempPassword(DefaultTempPasswordLength)
			for _, c := range password {
				assert.True(
					t,
					strings.ContainsRune(tempPasswordAlphabet, c),
					"unexpected character %q in %q", c, password,
				)
			}
		}
	})

	t.Run("alphabet has the fixed 72 characters", func(t *testing.T) {
		assert.Len(t, tempPasswordAlphabet, 72)

		// no duplicates, or sampling would be non-uniform
		seen := make(map[rune]struct{}, 72)
		for _, c := range tempPasswordAlphabet {
			_, dup := seen[c]
			assert.False(t, dup, "duplicate alphabet character %q", c)
			seen[c] = struct{}{}
		}
	})
}

func TestTokenGenerator_OTP(t *testing.T) {
	generator := NewTokenGenerator()

	t.Run("always 6 digits in range", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			otp, err := generator.OTP()
			require.NoError(t, err)

			require.Len(t, otp, 6)
			value, err := strconv.Atoi(otp)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, value, 100000)
			assert.LessOrEqual(t, value, 999999)
		}
	})
}
