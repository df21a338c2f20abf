package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/internal/discovery"
)

// cliConfig is the flag/config-file-bound superset of core.Config: it adds
// the external-layer options (paths, reporters, ignore file, parallelism)
// spec.md leaves to the CLI per §6's stated division of responsibility.
type cliConfig struct {
	Paths       []string
	MinLines    int
	MaxLines    int
	MinTokens   int
	MaxSize     int
	Mode        string
	IgnoreCase  bool
	Exclude     []string
	Reporters   []string
	Output      string
	Parallelism int
	IgnoreFile  string
	Compare     string
	GitHub      bool
	GitHubLevel string
}

// bindFlags registers every recognized flag on fs and wires it through
// viper so JSCPD_* environment variables and a config file (.jscpd.yaml)
// can supply the same settings, the way the teacher's flag-based CLI is
// upgraded here to cobra+pflag+viper per this module's ambient CLI stack.
func bindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	fs.Int("min-lines", 5, "minimum lines for a clone to be reported")
	fs.Int("max-lines", 1000, "maximum lines a single clone region may span")
	fs.Int("min-tokens", 50, "minimum significant tokens per match window")
	fs.Int("max-size", 0, "maximum source file size in bytes (0 = unlimited)")
	fs.String("mode", "mild", "comparison mode: strict|mild|weak")
	fs.Bool("ignore-case", false, "fold case when comparing tokens")
	fs.StringSlice("exclude", nil, "glob patterns of paths to exclude")
	fs.StringSlice("reporters", []string{"console"}, "reporters to run: console,json,markdown,github")
	fs.String("output", ".jscpd/jscpd-report.json", "output path for the json reporter")
	fs.Int("parallelism", 1, "number of files to tokenize concurrently")
	fs.String("ignore-file", "", "path to a directory containing .jscpd-ignore.json/.yaml (defaults to the first scanned path)")
	fs.String("compare", "", "compare duplication between two git refs, e.g. main..HEAD")
	fs.Bool("github-annotations", false, "emit GitHub Actions annotations for found clones")
	fs.String("github-level", "warning", "annotation level: warning|error")

	v.BindPFlags(fs)
	v.SetEnvPrefix("jscpd")
	v.AutomaticEnv()
}

func loadCLIConfig(v *viper.Viper, paths []string) cliConfig {
	return cliConfig{
		Paths:       paths,
		MinLines:    v.GetInt("min-lines"),
		MaxLines:    v.GetInt("max-lines"),
		MinTokens:   v.GetInt("min-tokens"),
		MaxSize:     v.GetInt("max-size"),
		Mode:        v.GetString("mode"),
		IgnoreCase:  v.GetBool("ignore-case"),
		Exclude:     v.GetStringSlice("exclude"),
		Reporters:   v.GetStringSlice("reporters"),
		Output:      v.GetString("output"),
		Parallelism: v.GetInt("parallelism"),
		IgnoreFile:  v.GetString("ignore-file"),
		Compare:     v.GetString("compare"),
		GitHub:      v.GetBool("github-annotations"),
		GitHubLevel: v.GetString("github-level"),
	}
}

// toCoreConfig maps the CLI's flat config to core.Config, validating the
// mode string against core.Mode's recognized values.
func (c cliConfig) toCoreConfig() (core.Config, error) {
	mode := core.Mode(strings.ToLower(c.Mode))
	if mode == "" {
		mode = core.ModeMild
	}
	cfg := core.Config{
		MinLines:    c.MinLines,
		MaxLines:    c.MaxLines,
		MinTokens:   c.MinTokens,
		MaxSize:     c.MaxSize,
		Mode:        mode,
		IgnoreCase:  c.IgnoreCase,
		FormatsExts: discovery.DefaultFormatExts,
	}
	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}

func (c cliConfig) String() string {
	return fmt.Sprintf("mode=%s minTokens=%d minLines=%d maxLines=%d", c.Mode, c.MinTokens, c.MinLines, c.MaxLines)
}
