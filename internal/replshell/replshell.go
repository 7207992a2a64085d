/*
File    : loxgo/internal/replshell/replshell.go
Package : replshell

Package replshell is the interactive REPL: read a line, run it through
a persistent driver.Session, print any error in color, repeat. Grounded on the same readline.New/rl.Readline/rl.SaveHistory
loop and fatih/color severity palette used elsewhere for line-oriented
REPLs, generalized from a single-expression-per-line REPL to Lox's
statement-based one, with the exit condition changed to EOF or the
literal line `quit`.
*/
package replshell

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/loxgo/internal/config"
	"github.com/akashmaji946/loxgo/internal/driver"
)

var (
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

// Shell is an interactive REPL session bound to one driver.Session, so
// variables, functions, and classes persist across lines.
type Shell struct {
	cfg     config.REPL
	session *driver.Session
}

// New creates a Shell using cfg for cosmetics and writing `print`
// output and results to out.
func New(cfg config.REPL, out io.Writer) *Shell {
	return &Shell{cfg: cfg, session: driver.New(driver.WithOutput(out))}
}

// Run starts the read-eval-print loop against out, blocking until EOF
// or the user types `quit`.
func (sh *Shell) Run(out io.Writer) error {
	if !sh.cfg.NoColor {
		infoColor.Fprintf(out, "%s, press Ctrl+D or type 'quit' to exit\n", sh.cfg.Banner)
	} else {
		io.WriteString(out, sh.cfg.Banner+", press Ctrl+D or type 'quit' to exit\n")
	}

	rl, err := readline.New(sh.cfg.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // EOF (Ctrl+D) or read error: exit quietly.
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			return nil
		}

		rl.SaveHistory(line)
		sh.session.Run(line, errStream(sh.cfg, out))
	}
}

// errStream returns a writer that prefixes errors in red when color
// is enabled, plain otherwise. driver.Session.Run writes one error per
// line via it.
func errStream(cfg config.REPL, out io.Writer) io.Writer {
	if cfg.NoColor {
		return out
	}
	return coloredWriter{out}
}

type coloredWriter struct{ io.Writer }

func (w coloredWriter) Write(p []byte) (int, error) {
	errColor.Fprint(w.Writer, string(p))
	return len(p), nil
}
