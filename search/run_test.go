package search

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"psearch/common"
	"psearch/config"
	"psearch/region"
	"psearch/state"
)

const sampleLog = "sampleA\t{+chr1:120-150}\tchr1\n" +
	"sampleB\t{+chr1:50-300}\tchr1\n" +
	"sampleC\t{-chr1:120-150}\tchr1\n" +
	"sampleD\t{+chr2:120-150}\tchr2\n" +
	"circ10\t{+chr1:110-190}\tchr1\n" +
	"circ9\t{+chr1:110-190}\tchr1\n" +
	"mult_1\t{+chr1:10-400,+chr5:1-2}\tchr1,chr5\n"

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	dir := t.TempDir()
	cfg.Search.LogFile = filepath.Join(dir, "pressspan.log")
	cfg.Search.ResultsDir = dir
	cfg.Copy.Destination = filepath.Join(dir, "myfindings")
	cfg.Render.Destination = filepath.Join(dir, "mygraphs")
	if err := os.WriteFile(cfg.Search.LogFile, []byte(sampleLog), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func query(t *testing.T, env *state.LocalEnv, tokens ...string) *state.Query {
	t.Helper()
	regions, err := region.ParseAll(tokens)
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	return &state.Query{Regions: regions, LogFile: env.Cfg.Search.LogFile}
}

func lines(s string) []string {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestExecute_Selection(t *testing.T) {
	tests := []struct {
		name     string
		regions  []string
		category common.Category
		sort     bool
		want     []string
	}{
		{"samples", []string{"+chr1:100-200"}, common.CategoryNone, false, []string{"sampleA", "sampleB", "circ10", "circ9", "mult_1"}},
		{"circular", []string{"+chr1:100-200"}, common.CategoryCircular, false, []string{"circ10", "circ9"}},
		{"circular sorted", []string{"+chr1:100-200"}, common.CategoryCircular, true, []string{"circ9", "circ10"}},
		{"multistrand", []string{"+chr1:100-200"}, common.CategoryMultistrand, false, []string{"mult_1"}},
		{"minus strand", []string{"-chr1:100-200"}, common.CategoryNone, false, []string{"sampleC"}},
		{"other chromosome", []string{"+chr3:1-1000"}, common.CategoryNone, false, nil},
		{"any region", []string{"+chr2:130-140", "-chr1:121-149"}, common.CategoryNone, false, []string{"sampleC", "sampleD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, env := setupTestEnv(t)
			env.Query = query(t, env, tt.regions...)
			env.Query.Category = tt.category
			env.Query.Sort = tt.sort

			var out bytes.Buffer
			if err := execute(ctx, env, &out, env.Log); err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			got := lines(out.String())
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("execute() output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExecute_MissingLog(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Query = query(t, env, "+chr1:1-2")
	env.Query.LogFile = filepath.Join(t.TempDir(), "absent.log")

	err := execute(ctx, env, io.Discard, env.Log)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("execute() error = %v, want os.ErrNotExist", err)
	}
}

func TestExecute_CopyFailuresAreNotFatal(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Query = query(t, env, "+chr1:100-200")
	env.Query.Category = common.CategoryCircular
	env.Query.Copy = true

	dir := filepath.Join(env.Cfg.Search.ResultsDir, env.Cfg.Search.CircularsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	// only one of two graphs exists
	if err := os.WriteFile(filepath.Join(dir, "circ9.dot"), []byte("digraph{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := execute(ctx, env, io.Discard, env.Log); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.Cfg.Copy.Destination, "circ9.dot")); err != nil {
		t.Errorf("expected copied graph: %v", err)
	}
}

func TestExecute_NothingFoundNothingCreated(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Query = query(t, env, "+chr9:1-2")
	env.Query.Copy, env.Query.Render = true, true

	if err := execute(ctx, env, io.Discard, env.Log); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, dir := range []string{env.Cfg.Copy.Destination, env.Cfg.Render.Destination} {
		if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("directory %s should not be created, stat error = %v", dir, err)
		}
	}
}

func TestExecute_DebugReport(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Reporting.Destination = filepath.Join(t.TempDir(), "report.zip")
	rpt, err := env.Cfg.Reporting.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	env.Rpt = rpt
	env.Query = query(t, env, "+chr1:100-200")
	env.Query.Category = common.CategoryMultistrand

	if err := execute(ctx, env, io.Discard, env.Log); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if err := env.Rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(env.Cfg.Reporting.Destination)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	contents := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		contents[f.Name] = string(data)
	}

	if got := contents["selected.txt"]; got != "mult_1" {
		t.Errorf("selected.txt = %q, want %q", got, "mult_1")
	}
	dump := contents["query.txt"]
	for _, want := range []string{"category: multistrand", "+chr1:100-200", "results: 1", "    mult_1"} {
		if !strings.Contains(dump, want) {
			t.Errorf("query.txt does not contain %q:\n%s", want, dump)
		}
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "search",
		Action: Run,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "circular"},
			&cli.BoolFlag{Name: "multistrand"},
			&cli.BoolFlag{Name: "copy"},
			&cli.BoolFlag{Name: "viz"},
			&cli.BoolFlag{Name: "sort"},
			&cli.StringFlag{Name: "log"},
		},
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no regions", []string{"search"}, ErrNoRegions},
		{"invalid region", []string{"search", "--", "+chr1:100-200", "chr1:100"}, region.ErrInvalidRegion},
		{"non numeric", []string{"search", "--", "chr1:a-b"}, region.ErrInvalidRegion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, env := setupTestEnv(t)
			err := newCommand().Run(ctx, tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
			if env.Query != nil {
				t.Error("query must not be built when arguments are invalid")
			}
		})
	}
}

func TestRun_BuildsQuery(t *testing.T) {
	ctx, env := setupTestEnv(t)
	args := []string{"search", "--circular", "--multistrand", "--sort", "--log=" + env.Cfg.Search.LogFile, "--", "-chr1:100-200", "+chr2:1-5"}
	if err := newCommand().Run(ctx, args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	q := env.Query
	if q == nil {
		t.Fatal("query was not built")
	}
	if len(q.Regions) != 2 || q.Regions[0].Strand != common.StrandMinus || q.Regions[1].Chromosome != "chr2" {
		t.Errorf("unexpected regions: %v", q.Regions)
	}
	if q.Category != common.CategoryNone {
		t.Errorf("both category flags should mean no filter, got %s", q.Category)
	}
	if !q.Sort || q.Copy || q.Render {
		t.Errorf("unexpected flags: %+v", q)
	}
	if q.LogFile != env.Cfg.Search.LogFile {
		t.Errorf("LogFile = %q, want %q", q.LogFile, env.Cfg.Search.LogFile)
	}
}
