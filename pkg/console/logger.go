package console

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger cria o logger de diagnóstico em stderr. Em modo verbose o nível é debug.
func NewLogger(prefix string, verbose bool) *log.Logger {
	return newLogger(os.Stderr, prefix, verbose)
}

func newLogger(w io.Writer, prefix string, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: verbose,
	})
}
