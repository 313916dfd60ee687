package cliutil

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

type LogOptions struct {
	// e.g. path/to/contacts.log; "" or "-" for stderr
	LogPath string

	// text|json
	LogFormat string

	// info|debug|warn|error
	LogLevel string

	// Rotate the log file once it would exceed this many bytes. 0 disables rotation. Ignored when logging to stderr.
	LogRotateBytes int64

	// Number of rotated files to keep; the current file is not counted. -1 keeps all. 0 means the default of 2.
	KeepOld int
}

func firstenv(env_var_names ...string) string {
	for _, env_var_name := range env_var_names {
		val := os.Getenv(env_var_name)
		if val != "" {
			return val
		}
	}
	return ""
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %#v", s)
}

// SetupSlog integrates passed in options and env vars, and installs the result as the slog default.
//
// passing default cliutil.LogOptions{} is ok.
//
// CONTACTS_LOG_LEVEL=info|debug|warn|error
//
// CONTACTS_LOG_FMT=text|json
//
// CONTACTS_LOG_FILE=path (or "-" or "" for stderr)
//
// CONTACTS_LOG_ROTATE_BYTES=int maximum size of log file before rotating
//
// CONTACTS_LOG_ROTATE_KEEP=int number of rotated files to keep
//
// Logs never go to stdout, which belongs to the interactive console. The returned closer releases the log file, if one was opened.
func SetupSlog(options LogOptions) (*slog.Logger, io.Closer, error) {
	if options.LogLevel == "" {
		options.LogLevel = firstenv("CONTACTS_LOG_LEVEL", "GOLOG_LOG_LEVEL")
	}
	level, err := parseLevel(options.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	hopts := slog.HandlerOptions{Level: level}

	if options.LogFormat == "" {
		options.LogFormat = firstenv("CONTACTS_LOG_FMT", "GOLOG_LOG_FMT")
	}
	format := strings.ToLower(options.LogFormat)
	if format == "" {
		format = "text"
	}

	if options.LogPath == "" {
		options.LogPath = firstenv("CONTACTS_LOG_FILE")
	}
	if options.LogRotateBytes == 0 {
		if v := os.Getenv("CONTACTS_LOG_ROTATE_BYTES"); v != "" {
			rotateBytes, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid CONTACTS_LOG_ROTATE_BYTES value: %w", err)
			}
			options.LogRotateBytes = rotateBytes
		}
	}
	if options.KeepOld == 0 {
		options.KeepOld = 2
		if v := os.Getenv("CONTACTS_LOG_ROTATE_KEEP"); v != "" {
			keepOld, err := strconv.Atoi(v)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid CONTACTS_LOG_ROTATE_KEEP value: %w", err)
			}
			options.KeepOld = keepOld
		}
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if options.LogPath != "" && options.LogPath != "-" {
		f, size, err := openLog(options.LogPath)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closer = f
		if options.LogRotateBytes > 0 {
			w := &logRotateWriter{
				path:         options.LogPath,
				rotateBytes:  options.LogRotateBytes,
				keep:         options.KeepOld,
				current:      f,
				currentBytes: size,
			}
			out = w
			closer = w
		}
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(out, &hopts)
	case "json":
		handler = slog.NewJSONHandler(out, &hopts)
	default:
		closer.Close()
		return nil, nil, fmt.Errorf("invalid log format: %#v", options.LogFormat)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer, nil
}

func openLog(path string) (*os.File, int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0664)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return f, fi.Size(), nil
}

// Size based rotation. The live file always sits at path; rotated files are renamed to path.<unix nanos>.
type logRotateWriter struct {
	lk sync.Mutex

	path        string
	rotateBytes int64

	// keep the most recent N rotated files (not including current)
	keep int

	current      *os.File
	currentBytes int64
}

func (w *logRotateWriter) Write(p []byte) (int, error) {
	w.lk.Lock()
	defer w.lk.Unlock()
	if w.current == nil {
		return 0, os.ErrClosed
	}
	if w.currentBytes > 0 && w.currentBytes+int64(len(p)) > w.rotateBytes {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := w.current.Write(p)
	w.currentBytes += int64(n)
	return n, err
}

func (w *logRotateWriter) rotate() error {
	if err := w.current.Close(); err != nil {
		return err
	}
	w.current = nil
	if err := os.Rename(w.path, fmt.Sprintf("%s.%d", w.path, time.Now().UnixNano())); err != nil {
		return err
	}
	f, size, err := openLog(w.path)
	if err != nil {
		return err
	}
	w.current = f
	w.currentBytes = size
	w.cleanOldLogs()
	return nil
}

func (w *logRotateWriter) cleanOldLogs() {
	if w.keep < 0 {
		// old log removal is disabled
		return
	}
	dir, name := filepath.Split(w.path)
	if dir == "" {
		dir = "."
	}
	rotated := regexp.MustCompile("^" + regexp.QuoteMeta(name) + `\.(\d+)$`)
	ents, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	type old struct {
		name  string
		nanos int64
	}
	var found []old
	for _, ent := range ents {
		m := rotated.FindStringSubmatch(ent.Name())
		if m == nil {
			continue
		}
		nanos, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		found = append(found, old{ent.Name(), nanos})
	}
	if len(found) <= w.keep {
		return
	}
	slices.SortFunc(found, func(a, b old) int { return cmp.Compare(a.nanos, b.nanos) })
	for _, o := range found[:len(found)-w.keep] {
		// best effort; a leftover file is retried on the next rotation
		os.Remove(filepath.Join(dir, o.name))
	}
}

func (w *logRotateWriter) Close() error {
	w.lk.Lock()
	defer w.lk.Unlock()
	if w.current == nil {
		return nil
	}
	err := w.current.Close()
	w.current = nil
	return err
}
