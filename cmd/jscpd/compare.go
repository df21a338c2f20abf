package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/internal/discovery"
	"github.com/moinsen-dev/jscpd2025/internal/engine"
)

// runCompare scans the repository at two refs and reports which clones
// present at base are still present at head, surfacing refactors that
// removed only some occurrences of a duplicate (spec.md's external layer is
// free to add a comparison mode; grounded on the teacher's runCompare, but
// replacing its `git worktree add` + subprocess-self-exec shellout with an
// in-process checkout via go-git — no dependency on a `git` binary on
// $PATH, and no re-invoking our own binary as a subprocess).
func runCompare(ctx context.Context, repoPath, refSpec string, cfg cliConfig) error {
	baseRef, headRef, ok := strings.Cut(refSpec, "..")
	if !ok {
		return fmt.Errorf("compare ref spec must look like base..head, got %q", refSpec)
	}

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("opening repository at %s: %w", repoPath, err)
	}

	baseDir, err := os.MkdirTemp("", "jscpd-base-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(baseDir)

	headDir, err := os.MkdirTemp("", "jscpd-head-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(headDir)

	fmt.Printf("Comparing duplication: %s -> %s\n", baseRef, headRef)

	if err := checkoutRefTo(repo, repoPath, baseRef, baseDir); err != nil {
		return fmt.Errorf("checking out %s: %w", baseRef, err)
	}
	if err := checkoutRefTo(repo, repoPath, headRef, headDir); err != nil {
		return fmt.Errorf("checking out %s: %w", headRef, err)
	}

	baseClones, _, err := scanDir(ctx, baseDir, cfg)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", baseRef, err)
	}
	headClones, headStat, err := scanDir(ctx, headDir, cfg)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", headRef, err)
	}

	baseKeys := make(map[string]bool, len(baseClones))
	for _, c := range baseClones {
		baseKeys[cloneFingerprint(c, baseDir)] = true
	}

	var lingering []core.Clone
	for _, c := range headClones {
		if baseKeys[cloneFingerprint(c, headDir)] {
			lingering = append(lingering, c)
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("COMPARISON RESULTS: %s -> %s\n", baseRef, headRef)
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))

	if len(lingering) == 0 {
		fmt.Println("No lingering duplicates found. All refactoring appears complete!")
	} else {
		fmt.Printf("Found %d clones present at both %s and %s:\n\n", len(lingering), baseRef, headRef)
		r := NewConsoleReporter()
		r.Report(lingering, headStat)
	}
	return nil
}

// checkoutRefTo produces a working copy of repoPath at ref inside dir. A
// fresh clone-and-checkout stands in for the teacher's `git worktree add
// --detach`: both end with an independent directory holding ref's tree, but
// this way the whole operation stays inside the go-git object model instead
// of shelling out.
func checkoutRefTo(repo *git.Repository, repoPath, ref, dir string) error {
	hash, err := resolveRef(repo, ref)
	if err != nil {
		return err
	}

	clone, err := git.PlainClone(dir, false, &git.CloneOptions{URL: repoPath})
	if err != nil {
		return err
	}
	wt, err := clone.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&git.CheckoutOptions{Hash: hash})
}

func resolveRef(repo *git.Repository, ref string) (plumbing.Hash, error) {
	h, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *h, nil
}

// scanDir runs a full discover+detect+scan pass rooted at dir using cfg's
// thresholds, returning the raw clone list (for comparison) and the run's
// statistic.
func scanDir(ctx context.Context, dir string, cfg cliConfig) ([]core.Clone, core.Statistic, error) {
	coreCfg, err := cfg.toCoreConfig()
	if err != nil {
		return nil, core.Statistic{}, err
	}

	sources, err := discovery.Discover([]string{dir}, discovery.DefaultFormatExts, cfg.Exclude, cfg.MaxSize)
	if err != nil {
		return nil, core.Statistic{}, err
	}

	return engine.Scan(ctx, engine.Options{Config: coreCfg, Sources: sources, Parallelism: cfg.Parallelism})
}

// cloneFingerprint identifies a clone independent of the temp checkout
// directory prefix, so a clone found in both scans compares equal even
// though its SourceIDs are rooted at different temp paths.
func cloneFingerprint(c core.Clone, root string) string {
	a := strings.TrimPrefix(c.DuplicationA.SourceID, root)
	b := strings.TrimPrefix(c.DuplicationB.SourceID, root)
	aLine, bLine := c.DuplicationA.Start.Line, c.DuplicationB.Start.Line
	if a > b {
		a, b = b, a
		aLine, bLine = bLine, aLine
	}
	return fmt.Sprintf("%s:%d-%s:%d", filepath.ToSlash(a), aLine, filepath.ToSlash(b), bLine)
}
