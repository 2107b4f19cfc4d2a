package uisnippets

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The live reload loop builds ./cmd and restarts the grid demo in dev mode.
func TestAirRunsGridInDevMode(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join("..", "..", ".air.toml"))
	require.NoError(t, v.ReadInConfig())

	assert.Contains(t, v.GetStringSlice("build.pre_cmd"), "go tool templ generate")
	assert.True(t, strings.HasSuffix(v.GetString("build.cmd"), "-o "+v.GetString("build.bin")+" ./cmd"))

	cmd, rest, err := rootCmd.Find(v.GetStringSlice("build.args_bin"))
	require.NoError(t, err)
	assert.Same(t, gridCmd, cmd)

	t.Cleanup(func() { dev = false })
	require.NoError(t, cmd.ParseFlags(rest))
	assert.True(t, dev)
}
