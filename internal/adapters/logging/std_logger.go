package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/andrescamacho/waldolaw-go/internal/application/common"
)

var levelRank = map[string]int{
	common.LevelDebug: 0,
	common.LevelInfo:  1,
	common.LevelWarn:  2,
	common.LevelError: 3,
}

// Options configures a StdLogger
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Output string // stdout, stderr or file
	File   string
}

// StdLogger writes planner log lines through the standard log package
type StdLogger struct {
	out      *log.Logger
	closer   io.Closer
	minRank  int
	json     bool
	now      func() time.Time
	baseMeta map[string]interface{}
}

// NewStdLogger opens the configured output and returns a logger for it
func NewStdLogger(opts Options) (*StdLogger, error) {
	var w io.Writer
	var closer io.Closer
	switch strings.ToLower(opts.Output) {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	case "file":
		if opts.File == "" {
			return nil, fmt.Errorf("log output is file but no file path given")
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	default:
		return nil, fmt.Errorf("unknown log output %q", opts.Output)
	}

	logger := NewWriterLogger(w, opts.Level, opts.Format)
	logger.closer = closer
	return logger, nil
}

// NewWriterLogger logs to w
func NewWriterLogger(w io.Writer, level, format string) *StdLogger {
	return &StdLogger{
		out:     log.New(w, "", 0),
		minRank: rankOf(level),
		json:    strings.EqualFold(format, "json"),
		now:     time.Now,
	}
}

func rankOf(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelRank[common.LevelDebug]
	case "warn", "warning":
		return levelRank[common.LevelWarn]
	case "error":
		return levelRank[common.LevelError]
	}
	return levelRank[common.LevelInfo]
}

// With returns a logger that adds metadata to every line
func (l *StdLogger) With(metadata map[string]interface{}) *StdLogger {
	merged := make(map[string]interface{}, len(l.baseMeta)+len(metadata))
	for k, v := range l.baseMeta {
		merged[k] = v
	}
	for k, v := range metadata {
		merged[k] = v
	}
	return &StdLogger{
		out:      l.out,
		minRank:  l.minRank,
		json:     l.json,
		now:      l.now,
		baseMeta: merged,
	}
}

// Log implements common.PlanLogger
func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRank[level]
	if !ok {
		rank = levelRank[common.LevelInfo]
	}
	if rank < l.minRank {
		return
	}

	fields := make(map[string]interface{}, len(l.baseMeta)+len(metadata))
	for k, v := range l.baseMeta {
		fields[k] = v
	}
	for k, v := range metadata {
		fields[k] = v
	}

	var line string
	if l.json {
		line = l.jsonLine(level, message, fields)
	} else {
		line = l.textLine(level, message, fields)
	}

	l.out.Print(line)
}

func (l *StdLogger) jsonLine(level, message string, fields map[string]interface{}) string {
	entry := map[string]interface{}{
		"time":    l.now().UTC().Format(time.RFC3339Nano),
		"level":   level,
		"message": message,
	}
	if len(fields) > 0 {
		entry["metadata"] = fields
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"level":%q,"message":%q,"error":%q}`, level, message, err.Error())
	}
	return string(data)
}

func (l *StdLogger) textLine(level, message string, fields map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", l.now().Format("2006-01-02 15:04:05.000"), level, message)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

// Close releases the log file, if any
func (l *StdLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
