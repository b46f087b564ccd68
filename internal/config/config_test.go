package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 20, cfg.Table.PageSize)
	assert.Equal(t, timeline.DefaultWidth, cfg.Timeline.Width)
	assert.Equal(t, crowdfolio.DefaultStyle, cfg.Style())
}

func TestConfig_File(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"

[display]
currency = "CZK"
template = "1 $"

[table]
page_size = 50

[timeline]
width = 6

[taxonomy.aliases]
"Cashback" = "reward"
"Splátka" = "Vrácení jistiny"
`)
	cfg, err := LoadConfig(path, filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "CZK", cfg.Style().Grapheme)
	assert.Equal(t, ",", cfg.Style().Decimal, "unset keys keep their default")
	assert.Equal(t, 50, cfg.Table.PageSize)
	assert.Equal(t, 6, cfg.Timeline.Width)

	tax, err := cfg.NewTaxonomy()
	require.NoError(t, err)
	assert.Equal(t, crowdfolio.KindReward, tax.Classify("cashback"))
	assert.Equal(t, crowdfolio.KindPrincipalRepayment, tax.Classify("Splátka"))
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CFO_LOG_LEVEL", "error")
	t.Setenv("CFO_PAGE_SIZE", "7")
	t.Setenv("CFO_TIMELINE_WIDTH", "12")

	cfg, err := LoadConfig(writeConfig(t, "[table]\npage_size = 50\n"))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Table.PageSize)
	assert.Equal(t, 12, cfg.Timeline.Width)
}

func TestConfig_Invalid(t *testing.T) {
	testCases := map[string]string{
		"width":     "[timeline]\nwidth = 13\n",
		"page size": "[table]\npage_size = 0\n",
		"alias":     "[taxonomy.aliases]\n\"x\" = \"nonsense\"\n",
		"syntax":    "[table\n",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv("CFO_CONFIG", "/tmp/elsewhere.toml")
	assert.Equal(t, "/tmp/elsewhere.toml", DefaultPath())
}
