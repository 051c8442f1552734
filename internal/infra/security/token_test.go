package security_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beto956/rvnb/internal/infra/security"
)

func TestNewToken(t *testing.T) {
	gen := security.RandomTokenGenerator{}

	tok, err := gen.NewToken()
	require.NoError(t, err)
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := gen.NewToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestNewTokenCustomSize(t *testing.T) {
	tok, err := security.RandomTokenGenerator{Size: 16}.NewToken()
	require.NoError(t, err)
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
}
