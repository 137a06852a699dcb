// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"psearch/common"
	"psearch/config"
	"psearch/region"
)

type envKey struct{}

// Query is everything collected from command line for single search. It is
// built once before scanning and never modified afterwards.
type Query struct {
	Regions  []region.Region
	Category common.Category
	LogFile  string
	Copy     bool
	Render   bool
	Sort     bool
}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// RunID identifies this invocation in logs and debug report.
	RunID string
	Query *Query

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
