package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"psearch/region"
)

// Stats summarizes single pass over the log.
type Stats struct {
	Lines    int
	Skipped  int
	Selected int
}

// SelectFunc is called for every selected record in log order. If an error is
// returned, scanning stops and the error is returned by Select.
type SelectFunc func(rec Record) error

// Scanner selects log records matching any of its regions. Regions are never
// modified after scanner is created.
type Scanner struct {
	regions []region.Region
	log     *zap.Logger
}

func NewScanner(regions []region.Region, log *zap.Logger) *Scanner {
	return &Scanner{regions: regions, log: log}
}

// Select reads log from r line by line. Only current line is kept in memory.
// Malformed lines are reported and skipped. With no regions nothing is
// selected.
func (s *Scanner) Select(ctx context.Context, r io.Reader, fn SelectFunc) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, rerr := br.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return stats, fmt.Errorf("unable to read log at line %d: %w", stats.Lines+1, rerr)
		}

		if len(line) > 0 {
			stats.Lines++
			if err := s.line(line, stats.Lines, &stats, fn); err != nil {
				return stats, err
			}
		}

		if rerr != nil {
			// EOF
			break
		}
	}
	return stats, nil
}

func (s *Scanner) line(line string, num int, stats *Stats, fn SelectFunc) error {
	if len(strings.TrimSpace(line)) == 0 {
		return nil
	}

	rec, err := ParseRecord(line)
	if err != nil {
		stats.Skipped++
		s.log.Warn("Skipping log line", zap.Int("line", num), zap.Error(err))
		return nil
	}
	rec.Line = num

	if !region.MatchesAny(s.regions, rec.Fragments) {
		return nil
	}

	stats.Selected++
	s.log.Debug("Record selected", zap.String("id", rec.ID), zap.Int("line", num))
	return fn(rec)
}

// Identifiers returns identifiers of all selected records in log order.
func Identifiers(ctx context.Context, r io.Reader, regions []region.Region, log *zap.Logger) ([]string, Stats, error) {
	var ids []string
	stats, err := NewScanner(regions, log).Select(ctx, r, func(rec Record) error {
		ids = append(ids, rec.ID)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return ids, stats, nil
}
