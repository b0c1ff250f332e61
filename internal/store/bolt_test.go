package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Bolt {
	t.Helper()

	b, err := NewBolt(filepath.Join(t.TempDir(), "frontdesk.bolt"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = b.Close()
	})

	return b
}

func TestTokenAbsentInitially(t *testing.T) {
	b := openTestStore(t)

	token, ok := b.Token()
	require.False(t, ok)
	require.Empty(t, token)
}

func TestSetAndGetToken(t *testing.T) {
	b := openTestStore(t)

	require.NoError(t, b.SetToken("opaque-session-token"))

	token, ok := b.Token()
	require.True(t, ok)
	require.Equal(t, "opaque-session-token", token)
}

func TestSetTokenReplaces(t *testing.T) {
	b := openTestStore(t)

	require.NoError(t, b.SetToken("first"))
	require.NoError(t, b.SetToken("second"))

	token, ok := b.Token()
	require.True(t, ok)
	require.Equal(t, "second", token)
}

func TestClearToken(t *testing.T) {
	b := openTestStore(t)

	require.NoError(t, b.SetToken("opaque-session-token"))
	require.NoError(t, b.ClearToken())

	_, ok := b.Token()
	require.False(t, ok)

	// Clearing an empty slot is not an error.
	require.NoError(t, b.ClearToken())
}

func TestTokenSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frontdesk.bolt")

	b, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, b.SetToken("survives-restart"))
	require.NoError(t, b.Close())

	reopened, err := NewBolt(path)
	require.NoError(t, err)

	defer func() {
		_ = reopened.Close()
	}()

	token, ok := reopened.Token()
	require.True(t, ok)
	require.Equal(t, "survives-restart", token)
}
