package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// TimestampFormat matches "2024-03-01 14:05:09,123"
const TimestampFormat = "2006-01-02 15:04:05,000"

// LineFormatter renders entries as "timestamp - LEVEL - message".
// Fields attached to an entry are ignored.
type LineFormatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter
func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = TimestampFormat
	}

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	b.WriteString(entry.Time.Format(layout))
	b.WriteString(" - ")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString(" - ")
	b.WriteString(strings.TrimRight(entry.Message, "\n"))
	b.WriteByte('\n')

	return b.Bytes(), nil
}

// NewWithWriter builds a logger writing formatted lines to w
func NewWithWriter(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&LineFormatter{TimestampFormat: TimestampFormat})

	return log, nil
}

// New creates dir if needed and returns a logger appending to dir/file.
// The returned closer releases the file.
func New(dir, file, level string) (*logrus.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, file)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log, err := NewWithWriter(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return log, f, nil
}
