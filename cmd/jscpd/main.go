// Command jscpd scans one or more paths for duplicated code, using the
// tokenizer, frame builder, matcher, and validators of core/* (spec.md's
// clone-detection engine) behind a cobra-based CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/core/scan"
	"github.com/moinsen-dev/jscpd2025/internal/discovery"
	"github.com/moinsen-dev/jscpd2025/internal/engine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "jscpd [paths...]",
		Short: "Find duplicated code across one or more source trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCLIConfig(v, args)
			if cfg.Compare != "" {
				return runCompare(cmd.Context(), args[0], cfg.Compare, cfg)
			}
			return runScan(cmd.Context(), cfg)
		},
	}
	root.SetContext(context.Background())

	v.SetConfigName(".jscpd")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // absence is not an error; flags/env still apply

	bindFlags(root.Flags(), v)
	return root
}

func runScan(ctx context.Context, cfg cliConfig) error {
	coreCfg, err := cfg.toCoreConfig()
	if err != nil {
		return err
	}

	sources, err := discovery.Discover(cfg.Paths, discovery.DefaultFormatExts, cfg.Exclude, cfg.MaxSize)
	if err != nil {
		return fmt.Errorf("discovering sources: %w", err)
	}
	fmt.Printf("Scanning %d files...\n", len(sources))

	var ignore *IgnoreFile
	if len(cfg.Paths) > 0 {
		dir := cfg.IgnoreFile
		if dir == "" {
			dir = cfg.Paths[0]
		}
		ignore, err = loadIgnoreFile(dir)
		if err != nil {
			return err
		}
	}

	progress := newProgressSubscriber(len(sources))

	clones, stat, err := engine.Scan(ctx, engine.Options{
		Config:      coreCfg,
		Sources:     sources,
		Parallelism: cfg.Parallelism,
		Subscribers: []core.Subscriber{progress},
	})
	if err != nil {
		return err
	}

	if ignore != nil {
		before := len(clones)
		clones = filterClones(clones, ignore)
		if n := before - len(clones); n > 0 {
			fmt.Printf("Ignored %d clones matching %s\n", n, ".jscpd-ignore")
		}
	}

	reporters, err := buildReporters(cfg)
	if err != nil {
		return err
	}
	for _, r := range reporters {
		r.Report(clones, stat)
	}
	return nil
}

func buildReporters(cfg cliConfig) ([]scan.Reporter, error) {
	var reporters []scan.Reporter
	for _, name := range cfg.Reporters {
		switch name {
		case "console":
			reporters = append(reporters, NewConsoleReporter())
		case "json":
			reporters = append(reporters, NewJSONReporter(cfg.Output))
		case "markdown":
			md, err := NewMarkdownReporter()
			if err != nil {
				return nil, fmt.Errorf("initializing markdown reporter: %w", err)
			}
			reporters = append(reporters, md)
		case "github":
			reporters = append(reporters, NewGitHubReporter(cfg.GitHubLevel))
		default:
			return nil, fmt.Errorf("unknown reporter %q", name)
		}
	}
	if cfg.GitHub && !containsString(cfg.Reporters, "github") {
		reporters = append(reporters, NewGitHubReporter(cfg.GitHubLevel))
	}
	if len(reporters) == 0 {
		reporters = append(reporters, NewConsoleReporter())
	}
	return reporters, nil
}

func containsString(ss []string, target string) bool {
	for _, s := range ss {
		if s == target {
			return true
		}
	}
	return false
}
