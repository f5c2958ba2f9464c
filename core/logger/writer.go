package logger

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	coreconfig "github.com/m3rciful/tynys/core/config"
)

// sink writes each log line to stdout and the optional log file as a unit.
type sink struct {
	mu      sync.Mutex
	out     io.Writer
	closers []io.Closer
}

// openSink adds logging.dir/logging.bot_file to stdout when both are set.
// A file that cannot be opened is reported and skipped.
func openSink(cfg *coreconfig.Config) *sink {
	s := &sink{out: os.Stdout}
	if cfg == nil {
		return s
	}
	dir := strings.TrimSpace(cfg.Logging.Dir)
	file := strings.TrimSpace(cfg.Logging.BotFile)
	if dir == "" || file == "" {
		return s
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("logger: failed to create log dir %s: %v", dir, err)
		return s
	}
	path := filepath.Join(dir, file)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("logger: failed to open log file %s: %v", path, err)
		return s
	}
	s.out = io.MultiWriter(os.Stdout, f)
	s.closers = append(s.closers, f)
	return s
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Write(p)
}

func (s *sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}
