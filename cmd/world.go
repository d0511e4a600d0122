package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cottand/overload/frontend/ilerr"
	"github.com/cottand/overload/internal/log"
	"github.com/cottand/overload/program"
	"github.com/logrusorgru/aurora/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cliLogger = log.DefaultLogger.With("section", "cli")

// worldFlags are shared by every command that works on a program description
type worldFlags struct {
	path     *string
	owner    *string
	logLevel *int
	color    *bool
	debug    *bool
}

func addWorldFlags(c *cobra.Command) *worldFlags {
	return &worldFlags{
		path:     c.Flags().StringP("world", "w", "world.yaml", "program description (YAML)"),
		owner:    c.Flags().StringP("owner", "O", "", "receiver type the query is made from, which self stands for"),
		logLevel: c.Flags().IntP("log-level", "l", int(slog.LevelWarn), "log level"),
		color:    c.Flags().Bool("color", true, "colour the output"),
		debug:    c.Flags().Bool("debug-errors", false, "print where errors were raised"),
	}
}

func (f *worldFlags) setup() *aurora.Aurora {
	log.SetLevel(slog.Level(*f.logLevel))
	ilerr.SetDebugPrinting(*f.debug)
	return aurora.New(aurora.WithColors(*f.color))
}

func (f *worldFlags) load() (*program.Program, error) {
	target, err := filepath.Abs(*f.path)
	if err != nil {
		return nil, errors.Wrap(err, "could not get absolute path of world")
	}
	p, err := program.Load(os.DirFS(filepath.Dir(target)), filepath.Base(target))
	if err != nil {
		return nil, err
	}
	cliLogger.Debug("loaded world", "path", target, "types", len(p.TypeNames()))
	return p, nil
}

// scope returns the scope queries are evaluated in, following --owner
func (f *worldFlags) scope(p *program.Program) (*program.Scope, error) {
	s, err := p.ReceiverScope(*f.owner)
	if err != nil {
		return nil, describe(err, *f.owner)
	}
	return s, nil
}

// describe formats a compile error with its code and, when source is
// known, the offending part of it
func describe(err error, source string) error {
	var ileErr ilerr.IleError
	if errors.As(err, &ileErr) {
		return errors.New(ilerr.FormatWithCodeAndSource(ileErr, source))
	}
	return err
}
