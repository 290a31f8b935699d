// Package adapter translates a launcher query into a launcher result set by
// running the external calculator once and interpreting its text output.
//
// The pipeline is strictly linear: assemble the query, apply the admission
// filter, run the tool, classify the output, build at most one record, emit.
// Every failure degrades to an empty result set; nothing is retried and no
// state survives an invocation.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/harrison/rinkadapter/internal/config"
	"github.com/harrison/rinkadapter/internal/logger"
	"github.com/harrison/rinkadapter/internal/models"
	"github.com/harrison/rinkadapter/internal/tool"
)

// Logger receives diagnostics. *logger.ConsoleLogger satisfies it.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Adapter is the query-to-result pipeline.
type Adapter struct {
	cfg    *config.Config
	runner tool.Runner
	logger Logger
}

// New creates an Adapter. A nil logger discards diagnostics.
func New(cfg *config.Config, runner tool.Runner, log Logger) *Adapter {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Adapter{
		cfg:    cfg,
		runner: runner,
		logger: log,
	}
}

// Translate runs the pipeline for an already assembled query.
// It never fails; any problem yields an empty set.
func (a *Adapter) Translate(ctx context.Context, query string) models.ResultSet {
	id := uuid.NewString()

	minLength := a.cfg.EffectiveMinQueryLength()
	if !Admit(query, minLength) {
		a.logger.Debugf("[%s] query %q shorter than %d characters, skipping tool", id, query, minLength)
		return models.EmptyResultSet()
	}

	a.logger.Debugf("[%s] running %s %q", id, a.cfg.ToolPath, query)
	out, err := a.runner.Run(ctx, a.cfg.ToolPath, []string{query})
	if err != nil {
		a.logger.Warnf("[%s] %v", id, err)
		return models.EmptyResultSet()
	}
	if out == nil {
		a.logger.Warnf("[%s] %s returned no output", id, a.cfg.ToolPath)
		return models.EmptyResultSet()
	}
	a.logger.Debugf("[%s] tool exited %d after %s", id, out.ExitCode, out.Duration)
	a.logger.Tracef("[%s] stdout %q stderr %q", id, out.Stdout, out.Stderr)

	outcome, lines := Classify(out, a.cfg.LineSeparator)
	if outcome.Emits() {
		record := BuildRecord(a.cfg, query, lines)
		a.logger.Infof("[%s] %s: %q", id, outcome, record.Label)
		return models.ResultSet{record}
	}

	if outcome == models.OutcomeToolError {
		if out.Stderr != "" {
			a.logger.Warnf("[%s] %s: stderr %q", id, outcome, out.Stderr)
		} else {
			a.logger.Warnf("[%s] %s: unexpected stdout %q", id, outcome, out.Stdout)
		}
	} else {
		a.logger.Debugf("[%s] %s", id, outcome)
	}

	return models.EmptyResultSet()
}

// Run assembles the query from launcher arguments, translates it and writes
// the JSON array to w. The only error is a failed write.
func (a *Adapter) Run(ctx context.Context, args []string, w io.Writer) error {
	query := AssembleQuery(args, a.cfg.Prefix)
	return Emit(w, a.Translate(ctx, query))
}

// Emit writes set as a JSON array followed by a newline. HTML characters are
// left unescaped so labels such as "1 < 2" survive verbatim. A nil set is
// written as [].
func Emit(w io.Writer, set models.ResultSet) error {
	if set == nil {
		set = models.EmptyResultSet()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode result set: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write result set: %w", err)
	}
	return nil
}
