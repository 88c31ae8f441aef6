package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "service:\n  data_dir: /tmp/gnsync\n"))
	require.NoError(t, err)

	assert.Equal(t, "fr.geonature.sync", cfg.Service.PackageName)
	assert.Equal(t, filepath.Join("/tmp/gnsync", "gnsync.db"), cfg.Database.Path)
	assert.Equal(t, []string{"fr.geonature.sync"}, cfg.Remote.AvailablePackages)
	assert.Equal(t, []string{"occtax"}, cfg.Remote.Modules)
	assert.Equal(t, 3, cfg.Scheduler.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("GNSYNC_GEONATURE_URL", "https://demo.geonature.fr/geonature")
	t.Setenv("GNSYNC_PACKAGES", "fr.geonature.sync, fr.geonature.occtax2")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "https://demo.geonature.fr/geonature", cfg.Remote.GeoNatureBaseURL)
	assert.Equal(t, []string{"fr.geonature.sync", "fr.geonature.occtax2"}, cfg.Remote.AvailablePackages)
}

func TestLoad_RejectsInvalidRemoteURL(t *testing.T) {
	_, err := config.Load(writeConfig(t, "remote:\n  geonature_base_url: not a url\n"))
	require.Error(t, err)

	var validationErr *config.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "remote.geonature_base_url", validationErr.Field)
}

func TestLoad_RejectsInvalidLogLevel(t *testing.T) {
	_, err := config.Load(writeConfig(t, "logging:\n  level: verbose\n"))
	require.Error(t, err)
}
