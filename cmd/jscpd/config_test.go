package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinsen-dev/jscpd2025/core"
)

func newTestViper() (*viper.Viper, *pflag.FlagSet) {
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindFlags(fs, v)
	return v, fs
}

func TestLoadCLIConfig_Defaults(t *testing.T) {
	v, _ := newTestViper()
	cfg := loadCLIConfig(v, []string{"."})

	assert.Equal(t, []string{"."}, cfg.Paths)
	assert.Equal(t, 5, cfg.MinLines)
	assert.Equal(t, 1000, cfg.MaxLines)
	assert.Equal(t, 50, cfg.MinTokens)
	assert.Equal(t, "mild", cfg.Mode)
	assert.Equal(t, []string{"console"}, cfg.Reporters)
}

func TestLoadCLIConfig_FlagsOverrideDefaults(t *testing.T) {
	v, fs := newTestViper()
	require.NoError(t, fs.Parse([]string{"--min-lines=10", "--mode=strict", "--reporters=json,console"}))
	cfg := loadCLIConfig(v, []string{"src"})

	assert.Equal(t, 10, cfg.MinLines)
	assert.Equal(t, "strict", cfg.Mode)
	assert.Equal(t, []string{"json", "console"}, cfg.Reporters)
}

func TestToCoreConfig_MapsAndValidates(t *testing.T) {
	cfg := cliConfig{MinLines: 5, MaxLines: 100, MinTokens: 50, Mode: "STRICT"}
	coreCfg, err := cfg.toCoreConfig()
	require.NoError(t, err)
	assert.Equal(t, core.ModeStrict, coreCfg.Mode)
	assert.NotNil(t, coreCfg.FormatsExts)
}

func TestToCoreConfig_EmptyModeDefaultsToMild(t *testing.T) {
	cfg := cliConfig{MinLines: 5, MaxLines: 100, MinTokens: 50, Mode: ""}
	coreCfg, err := cfg.toCoreConfig()
	require.NoError(t, err)
	assert.Equal(t, core.ModeMild, coreCfg.Mode)
}

func TestToCoreConfig_RejectsInvalidThresholds(t *testing.T) {
	cfg := cliConfig{MinLines: 10, MaxLines: 5, MinTokens: 50, Mode: "mild"}
	_, err := cfg.toCoreConfig()
	assert.Error(t, err)
}

func TestCliConfig_StringSummarizesKeySettings(t *testing.T) {
	cfg := cliConfig{Mode: "weak", MinTokens: 30, MinLines: 3, MaxLines: 500}
	assert.Equal(t, "mode=weak minTokens=30 minLines=3 maxLines=500", cfg.String())
}
