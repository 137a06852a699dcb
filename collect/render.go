package collect

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"psearch/config"
	"psearch/results"
)

// DefaultNameTemplate produces "<id>.<format>".
const DefaultNameTemplate = `{{ .ID }}.{{ .Format }}`

// RenderOptions describe how to call renderer.
type RenderOptions struct {
	// Program is executable name or path, "dot" from GraphViz by default.
	Program      string
	Format       string
	Destination  string
	NameTemplate string
}

// Values is a struct that holds variables we make available for output name
// template expansion.
type Values struct {
	ID       string
	Category string
	Format   string
	Source   string
}

func outputName(tmpl *template.Template, id, src, format string) (string, error) {
	values := Values{
		ID:       id,
		Category: results.CategoryOf(id).String(),
		Format:   format,
		Source:   strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	name := config.CleanFileName(strings.TrimSpace(buf.String()))
	return name, nil
}

// Render calls renderer for artifact of every id producing images in
// destination directory. Missing renderer stops everything, other failures are
// per artifact. Returns number of rendered images.
func Render(ctx context.Context, ids []string, layout Layout, opts RenderOptions, log *zap.Logger) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	program, err := exec.LookPath(opts.Program)
	if err != nil {
		log.Error("Could not find renderer. Is GraphViz installed?", zap.String("program", opts.Program), zap.Error(err))
		return 0, fmt.Errorf("unable to find renderer %q: %w", opts.Program, err)
	}

	nameTmpl := opts.NameTemplate
	if len(nameTmpl) == 0 {
		nameTmpl = DefaultNameTemplate
	}
	tmpl, err := template.New("name_template").Funcs(sprig.FuncMap()).Parse(nameTmpl)
	if err != nil {
		return 0, fmt.Errorf("unable to parse output name template: %w", err)
	}

	log.Info("Rendering artifacts", zap.String("program", program), zap.String("format", opts.Format),
		zap.String("destination", opts.Destination), zap.Int("count", len(ids)))
	if err := os.MkdirAll(opts.Destination, 0755); err != nil {
		return 0, fmt.Errorf("unable to create destination directory: %w", err)
	}

	var (
		rendered int
		errs     error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return rendered, multierr.Append(errs, err)
		}
		if err := renderOne(ctx, program, id, layout, opts, tmpl, log); err != nil {
			log.Error("Unable to render artifact", zap.String("id", id), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		rendered++
	}
	return rendered, errs
}

func renderOne(ctx context.Context, program, id string, layout Layout, opts RenderOptions, tmpl *template.Template, log *zap.Logger) error {
	src, err := layout.Locate(id)
	if err != nil {
		return err
	}
	if _, err := os.Stat(src); err != nil {
		return err
	}

	name, err := outputName(tmpl, id, src, opts.Format)
	if err != nil {
		return fmt.Errorf("unable to expand output name: %w", err)
	}
	dst := filepath.Join(opts.Destination, name)

	cmd := exec.CommandContext(ctx, program, "-T"+opts.Format, src, "-o", dst)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("renderer failed: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	log.Debug("Artifact rendered", zap.String("id", id), zap.String("to", dst))
	return nil
}
