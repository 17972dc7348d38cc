package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/cleared-dev/sieread/internal/anomalies"
	"github.com/cleared-dev/sieread/internal/config"
)

// newLogger returns a logger writing to w. Output is human readable unless
// cfg.JSON is set; colour is used only on a terminal.
func newLogger(w io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w), TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func logAnomaly(log zerolog.Logger, path string, a anomalies.Anomaly) {
	log.Warn().
		Str("file", path).
		Int("line", a.Line).
		Str("kind", string(a.Kind)).
		Uint32("account", a.Account).
		Msg(a.Details)
}
