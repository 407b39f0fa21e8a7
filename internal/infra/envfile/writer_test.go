package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", ".env.local")

	err := NewWriter().Write(path, map[string]string{
		"AUTHPROVIDER_URL":     "https://auth.example.com",
		"AUTHPROVIDER_ANONKEY": "anon key with spaces",
	})
	require.NoError(t, err)

	values, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.com", values["AUTHPROVIDER_URL"])
	assert.Equal(t, "anon key with spaces", values["AUTHPROVIDER_ANONKEY"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriter_MergesExistingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("KEEP=me\nPOSTGRES_DATABASE=old\n"), 0o600))

	err := NewWriter().Write(path, map[string]string{"POSTGRES_DATABASE": "atelier"})
	require.NoError(t, err)

	values, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"KEEP": "me", "POSTGRES_DATABASE": "atelier"}, values)
}
