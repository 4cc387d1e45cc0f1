package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("ops@counselhub", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ExtractAdminFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@counselhub", subject)
}

func TestExpiredAdminTokenRejected(t *testing.T) {
	token, err := GenerateAdminToken("ops@counselhub", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractAdminFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateAdminToken("ops@counselhub", time.Hour)
	require.NoError(t, err)

	_, err = ExtractAdminFromToken(token + "x")
	assert.Error(t, err)
}
