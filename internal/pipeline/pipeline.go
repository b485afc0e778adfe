// Package pipeline runs the metadata synchronization batch: discovery,
// extraction, categorization, keyword synthesis, manifest writing, and
// catalog aggregation, strictly sequential in lexicographic plugin order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/aidanlsb/bifrost/internal/category"
	"github.com/aidanlsb/bifrost/internal/config"
	"github.com/aidanlsb/bifrost/internal/discovery"
	"github.com/aidanlsb/bifrost/internal/keywords"
	"github.com/aidanlsb/bifrost/internal/manifest"
	"github.com/aidanlsb/bifrost/internal/marketplace"
	"github.com/aidanlsb/bifrost/internal/registry"
	"github.com/aidanlsb/bifrost/internal/skilldoc"
	"github.com/aidanlsb/bifrost/internal/ui"
)

// Options configures one pipeline run.
type Options struct {
	// Root is the marketplace repository root.
	Root string

	// Config is the loaded repository configuration, treated as immutable.
	Config *config.Config

	// DryRun computes and prints all intended changes without writing.
	DryRun bool

	// Verbose adds category and keyword detail lines.
	Verbose bool

	// CheckDeps resolves front-matter dependencies against the registry.
	CheckDeps bool

	// Out receives progress lines and the summary. Defaults to io.Discard.
	Out io.Writer

	// Registry overrides the dependency-lookup client (tests).
	Registry *registry.Client

	// Now overrides the clock (tests).
	Now func() time.Time
}

// Summary aggregates per-run counts.
type Summary struct {
	Total    int
	Written  int
	Skipped  int
	Warnings int

	// Aggregate holds the catalog-level counts.
	Aggregate *marketplace.Summary
}

// Run executes the full pipeline. Every per-plugin failure is absorbed,
// tagged, and counted; the only error returned for a started batch is the
// fatal aggregate-validation failure (marketplace.ErrAggregateInvalid).
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	cfg := opts.Config

	plugins, err := discovery.Discover(filepath.Join(opts.Root, cfg.PluginsDir))
	if err != nil {
		return nil, err
	}

	sum := &Summary{Total: len(plugins)}
	for i, p := range plugins {
		sum.process(ctx, opts, i+1, len(plugins), p)
	}

	if err := aggregate(opts, sum); err != nil {
		return sum, err
	}

	printSummary(opts.Out, sum)
	return sum, nil
}

// process runs the per-plugin stages, printing one tagged progress line.
func (sum *Summary) process(ctx context.Context, opts Options, i, n int, p discovery.Plugin) {
	out := opts.Out
	cfg := opts.Config

	if !p.HasDoc {
		fmt.Fprintln(out, ui.Progress(i, n, p.Name, ui.StatusSkip, "no skill document"))
		sum.Skipped++
		return
	}

	meta, err := skilldoc.ParseFile(p.SkillDoc, p.Name)
	if err != nil {
		fmt.Fprintln(out, ui.Progress(i, n, p.Name, ui.StatusError, err.Error()))
		sum.Skipped++
		return
	}

	cat := category.Categorize(p.Name)
	kws := keywords.Synthesize(p.Name, cat, meta.Description, meta.ExplicitKeywords)

	if opts.Verbose {
		fmt.Fprintf(out, "  category: %s\n", cat)
		fmt.Fprintf(out, "  keywords: %d\n", len(kws))
	}
	if !keywords.CountInBounds(len(kws)) {
		fmt.Fprintln(out, ui.Warningf("%s: %d keywords (advisory range %d-%d)",
			p.Name, len(kws), keywords.MinCount, keywords.MaxCount))
		sum.Warnings++
	}
	if dl := len(meta.Description); dl > manifest.WarnDescriptionLen && dl <= manifest.MaxDescriptionLen {
		fmt.Fprintln(out, ui.Warningf("%s: description is %d chars (recommended max %d)",
			p.Name, dl, manifest.WarnDescriptionLen))
		sum.Warnings++
	}

	d, err := manifest.Build(p.Dir, p.SkillDir, manifest.Fields{
		Name:          p.Name,
		Description:   meta.Description,
		Version:       cfg.Version,
		License:       cfg.License,
		Repository:    cfg.RepositoryURL,
		Keywords:      kws,
		Category:      string(cat),
		DefaultAuthor: manifest.Author{Name: cfg.Author.Name, Email: cfg.Author.Email},
	})
	if err != nil {
		var tooLong *manifest.DescriptionTooLongError
		if errors.As(err, &tooLong) {
			fmt.Fprintln(out, ui.Progress(i, n, p.Name, ui.StatusSkip,
				fmt.Sprintf("description too long: %d chars", tooLong.Length)))
		} else {
			fmt.Fprintln(out, ui.Progress(i, n, p.Name, ui.StatusError, err.Error()))
		}
		sum.Skipped++
		return
	}

	if opts.CheckDeps && len(meta.Dependencies) > 0 {
		checkDeps(ctx, opts, p.Name, meta.Dependencies)
	}

	if opts.DryRun {
		fmt.Fprintln(out, ui.Progress(i, n, p.Name, ui.StatusOK,
			"dry-run: would write "+manifest.Path(p.Dir)))
		sum.Written++
		return
	}

	if err := manifest.Write(p.Dir, d); err != nil {
		fmt.Fprintln(out, ui.Progress(i, n, p.Name, ui.StatusError, err.Error()))
		sum.Skipped++
		return
	}
	fmt.Fprintln(out, ui.Progress(i, n, p.Name, ui.StatusOK, ""))
	sum.Written++
}

// checkDeps reports the latest registry version for each declared
// dependency. Failures surface as "unknown"; they never affect the batch.
func checkDeps(ctx context.Context, opts Options, name string, deps []string) {
	client := opts.Registry
	if client == nil {
		client = registry.New(opts.Config.Registry.Endpoint, opts.Config.RegistryTimeout())
	}
	for _, dep := range deps {
		version := client.LatestVersion(ctx, dep)
		fmt.Fprintf(opts.Out, "  %s dependency %s: %s\n", name, dep, version)
	}
}

// aggregate builds and (unless dry-run) persists the marketplace catalog.
func aggregate(opts Options, sum *Summary) error {
	m, aggSum, err := marketplace.Aggregate(opts.Root, opts.Config)
	if err != nil {
		return err
	}
	sum.Aggregate = aggSum

	if opts.DryRun {
		fmt.Fprintf(opts.Out, "dry-run: would write %s with %d plugins\n",
			marketplace.Path(opts.Root), len(m.Plugins))
		return nil
	}
	return marketplace.Write(opts.Root, m, aggSum, opts.Now())
}

// printSummary emits the final summary block with aggregate counts.
func printSummary(out io.Writer, sum *Summary) {
	agg := sum.Aggregate
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Header("Summary"))
	fmt.Fprintf(out, "  total: %d\n", agg.Total)
	fmt.Fprintf(out, "  written: %d\n", sum.Written)
	fmt.Fprintf(out, "  skipped: %d\n", agg.Skipped)
	fmt.Fprintf(out, "  missing-description: %d\n", agg.MissingDescription)
	fmt.Fprintf(out, "  empty-keywords: %d\n", agg.EmptyKeywords)

	cats := make([]string, 0, len(agg.PerCategory))
	for c := range agg.PerCategory {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		fmt.Fprintf(out, "  %s: %d\n", c, agg.PerCategory[c])
	}
	for _, s := range agg.SkippedPlugins {
		fmt.Fprintln(out, "  skipped: "+ui.Muted.Render(s))
	}
	if agg.BackupPath != "" {
		fmt.Fprintf(out, "  backup: %s\n", agg.BackupPath)
	}
}
