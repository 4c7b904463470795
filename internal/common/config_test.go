package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	require.Equal(t, 8080, config.Server.Port)
	require.Equal(t, "localhost", config.Server.Host)
	require.True(t, config.Content.SeedOnStartup)
	require.Equal(t, 100, config.Advisor.MaxListLimit)
	require.False(t, config.IsProduction())
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consilium.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment = "production"

[server]
port = 9090

[content]
seed_on_startup = false
update_schedule = "*/15 * * * *"
`), 0644))

	config, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 9090, config.Server.Port)
	require.Equal(t, "localhost", config.Server.Host)
	require.False(t, config.Content.SeedOnStartup)
	require.Equal(t, "*/15 * * * *", config.Content.UpdateSchedule)
	require.True(t, config.IsProduction())
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONSILIUM_SERVER_PORT", "7070")
	t.Setenv("CONSILIUM_LOG_LEVEL", "debug")
	t.Setenv("CONSILIUM_ADVISOR_ASK_RATE_LIMIT", "2.5")

	config, err := LoadFromFile("")
	require.NoError(t, err)
	require.Equal(t, 7070, config.Server.Port)
	require.Equal(t, "debug", config.Logging.Level)
	require.Equal(t, 2.5, config.Advisor.AskRateLimit)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 0, "")
	require.Equal(t, 8080, config.Server.Port)

	ApplyFlagOverrides(config, 3000, "0.0.0.0")
	require.Equal(t, 3000, config.Server.Port)
	require.Equal(t, "0.0.0.0", config.Server.Host)
}

func TestValidateJobSchedule(t *testing.T) {
	require.NoError(t, ValidateJobSchedule("*/15 * * * *"))
	require.NoError(t, ValidateJobSchedule("0 * * * *"))
	require.NoError(t, ValidateJobSchedule("30 2 * * 1"))

	require.Error(t, ValidateJobSchedule("* * * * *"))
	require.Error(t, ValidateJobSchedule("*/2 * * * *"))
	require.Error(t, ValidateJobSchedule("not a schedule"))
}
