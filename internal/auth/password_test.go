package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPasswordPlaintext(t *testing.T) {
	require.NoError(t, VerifyPassword("jonjon", "jonjon"))
	require.Error(t, VerifyPassword("jonjon", "wrong"))
	require.Error(t, VerifyPassword("jonjon", ""))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hashed, err := HashPassword("jonjon", bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, VerifyPassword(hashed, "jonjon"))
	require.Error(t, VerifyPassword(hashed, "wrong"))
}
