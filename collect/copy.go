package collect

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Copy copies artifacts of all ids into dst creating it if necessary. It
// returns number of copied files and combined error for those which failed.
func Copy(ctx context.Context, ids []string, layout Layout, dst string, log *zap.Logger) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	log.Info("Copying artifacts", zap.String("destination", dst), zap.Int("count", len(ids)))
	if err := os.MkdirAll(dst, 0755); err != nil {
		return 0, fmt.Errorf("unable to create destination directory: %w", err)
	}

	var (
		copied int
		errs   error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return copied, multierr.Append(errs, err)
		}

		src, err := layout.Locate(id)
		if err == nil {
			err = copyFile(src, filepath.Join(dst, filepath.Base(src)))
		}
		if err != nil {
			log.Error("Unable to copy artifact", zap.String("id", id), zap.String("file", src), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		copied++
		log.Debug("Artifact copied", zap.String("id", id), zap.String("file", src))
	}
	return copied, errs
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
