package membership

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user.name@sub.domain.com",
		"a-b_c@gym.es",
		"member@madrid.gmadrid.org",
	}
	for _, email := range valid {
		require.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"user@domain",
		"user@domain.c",
		"user name@domain.com",
		"@domain.com",
	}
	for _, email := range invalid {
		require.ErrorIs(t, ValidateEmail(email), ErrInvalidEmail, email)
	}
}

func TestDeviceToken(t *testing.T) {
	require.False(t, DeviceToken{}.HasToken())
	require.Equal(t, "", DeviceToken{}.Value())

	empty := ""
	require.True(t, DeviceToken{Token: &empty}.HasToken())

	tok := NewDeviceToken("fcm-token")
	require.True(t, tok.HasToken())
	require.Equal(t, "fcm-token", tok.Value())
}
