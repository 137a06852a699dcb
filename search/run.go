// Package search implements "search" command: selects results whose fragments
// relate to requested regions and optionally collects their graphs.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"psearch/collect"
	"psearch/region"
	"psearch/results"
	"psearch/scan"
	"psearch/state"
	"psearch/utils/debug"
)

// ErrNoRegions is returned when command line has no region arguments.
var ErrNoRegions = errors.New("no regions have been specified")

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("search")

	if cmd.Args().Len() == 0 {
		return ErrNoRegions
	}

	// all regions are checked before log is touched
	regions, err := region.ParseAll(cmd.Args().Slice())
	if err != nil {
		return fmt.Errorf("unable to parse regions: %w", err)
	}

	logFile := cmd.String("log")
	if len(logFile) == 0 {
		logFile = env.Cfg.Search.LogFile
	}

	env.Query = &state.Query{
		Regions:  regions,
		Category: results.Requested(cmd.Bool("circular"), cmd.Bool("multistrand")),
		LogFile:  logFile,
		Copy:     cmd.Bool("copy"),
		Render:   cmd.Bool("viz"),
		Sort:     cmd.Bool("sort"),
	}

	log.Info("Search starting", zap.Int("regions", len(regions)), zap.Stringer("category", env.Query.Category), zap.String("log", logFile), zap.String("run", env.RunID))
	defer func(start time.Time) {
		log.Info("Search completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return execute(ctx, env, os.Stdout, log)
}

// execute performs search described by env.Query independently of CLI framework.
func execute(ctx context.Context, env *state.LocalEnv, out io.Writer, log *zap.Logger) error {
	q := env.Query

	src, err := scan.Open(q.LogFile)
	if err != nil {
		return fmt.Errorf("unable to open log: %w", err)
	}
	defer src.Close()

	ids, stats, err := scan.Identifiers(ctx, src, q.Regions, log.Named("scan"))
	if err != nil {
		return fmt.Errorf("unable to scan log '%s': %w", q.LogFile, err)
	}
	ids = results.Filter(ids, q.Category)
	if q.Sort {
		results.SortNatural(ids)
	}

	for _, id := range ids {
		if _, err := fmt.Fprintln(out, id); err != nil {
			return fmt.Errorf("unable to output results: %w", err)
		}
	}
	log.Info(fmt.Sprintf("Found %d results matching your criteria", len(ids)),
		zap.Int("lines", stats.Lines), zap.Int("skipped", stats.Skipped), zap.Int("selected", stats.Selected))

	if env.Rpt != nil {
		env.Rpt.StoreData("query.txt", dumpQuery(env, stats, ids))
		env.Rpt.StoreData("selected.txt", []byte(strings.Join(ids, "\n")))
	}

	collectResults(ctx, env, ids, log.Named("collect"))
	return nil
}

// collectResults copies and renders graphs if requested. Failures here are
// reported but do not fail the search.
func collectResults(ctx context.Context, env *state.LocalEnv, ids []string, log *zap.Logger) {
	if len(ids) == 0 || !(env.Query.Copy || env.Query.Render) {
		return
	}

	layout := collect.Layout{
		Root:      env.Cfg.Search.ResultsDir,
		Circulars: env.Cfg.Search.CircularsDir,
		Multis:    env.Cfg.Search.MultisDir,
	}

	if env.Query.Copy {
		n, err := collect.Copy(ctx, ids, layout, env.Cfg.Copy.Destination, log)
		if err != nil {
			log.Warn("Some graphs were not copied", zap.Error(err))
		}
		log.Info("Copied graphs", zap.Int("count", n), zap.String("destination", env.Cfg.Copy.Destination))
	}
	if env.Query.Render {
		n, err := collect.Render(ctx, ids, layout, collect.RenderOptions{
			Program:      env.Cfg.Render.Program,
			Format:       env.Cfg.Render.Format,
			Destination:  env.Cfg.Render.Destination,
			NameTemplate: env.Cfg.Render.NameTemplate,
		}, log)
		if err != nil {
			log.Warn("Some graphs were not rendered", zap.Error(err))
		}
		log.Info("Rendered graphs", zap.Int("count", n), zap.String("destination", env.Cfg.Render.Destination))
	}
}

func dumpQuery(env *state.LocalEnv, stats scan.Stats, ids []string) []byte {
	q := env.Query

	tw := debug.NewTreeWriter()
	tw.TextBlock(0, "run", env.RunID)
	tw.Line(0, "query")
	tw.TextBlock(1, "log", q.LogFile)
	tw.Line(1, "category: %s", q.Category)
	tw.Line(1, "copy: %t, render: %t, sort: %t", q.Copy, q.Render, q.Sort)
	tw.Line(1, "regions: %d", len(q.Regions))
	for _, r := range q.Regions {
		tw.Line(2, "%s", r)
	}
	tw.Line(0, "scan")
	tw.Line(1, "lines: %d, skipped: %d, selected: %d", stats.Lines, stats.Skipped, stats.Selected)
	tw.Line(0, "results: %d", len(ids))
	for _, id := range ids {
		tw.Line(1, "%s", id)
	}
	return tw.Bytes()
}

