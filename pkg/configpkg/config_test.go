package configpkg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, StorageLocal, config.StorageMode)
	require.Equal(t, NamespaceMemory, config.LocalNamespace)
	require.Equal(t, TokenPaseto, config.TokenKind)
	require.Equal(t, 15*time.Minute, config.AccessTokenDuration)
	require.Equal(t, "@hourly", config.BudgetRefreshSpec)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()

	env := "STORAGE_MODE=remote\nDB_SOURCE=postgresql://localhost/budget\nNAMESPACE_QUOTA_BYTES=1024\nACCESS_TOKEN_DURATION=1h\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o600))

	t.Setenv("GCS_BUCKET", "receipts")
	t.Setenv("DB_SOURCE", "postgresql://db/override")

	config, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, StorageRemote, config.StorageMode)
	require.Equal(t, 1024, config.NamespaceQuotaBytes)
	require.Equal(t, time.Hour, config.AccessTokenDuration)
	require.Equal(t, "receipts", config.GCSBucket)
	require.Equal(t, "postgresql://db/override", config.DBSource)
}
