package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/internal/cliutil"
	"github.com/erraggy/keycase/naming"
)

// defaultStyleExample is converted by the styles command when no key is given.
const defaultStyleExample = "userAccountID"

// StylesFlags contains flags for the styles command
type StylesFlags struct {
	Example string
	Format  string
	Quiet   bool
}

// SetupStylesFlags creates and configures a FlagSet for the styles command.
func SetupStylesFlags() (*flag.FlagSet, *StylesFlags) {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	flags := &StylesFlags{}

	fs.StringVar(&flags.Example, "example", defaultStyleExample, "key to convert in every style")
	fs.StringVar(&flags.Format, "format", "text", "output format: text, json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no header, tab-separated columns")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no header, tab-separated columns")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: keycase styles [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the supported key styles with an example conversion.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  keycase styles\n")
		cliutil.Writef(fs.Output(), "  keycase styles --example HTTPServerName\n")
		cliutil.Writef(fs.Output(), "  keycase styles --format json\n")
	}

	return fs, flags
}

// HandleStyles executes the styles command
func HandleStyles(args []string) error {
	return runStyles(args, os.Stdout, os.Stderr)
}

func runStyles(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupStylesFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("styles command takes no arguments")
	}

	headers := []string{"Style", "Example"}
	rows := make([][]string, 0, len(naming.Styles()))
	for _, style := range naming.Styles() {
		rows = append(rows, []string{style.String(), style.Handler()(flags.Example)})
	}

	switch flags.Format {
	case "text":
		RenderTable(stdout, headers, rows, flags.Quiet)
		return nil
	case string(codec.FormatJSON), string(codec.FormatYAML):
		return RenderStructured(stdout, headers, rows, codec.Format(flags.Format))
	default:
		return fmt.Errorf("invalid format '%s'. Valid formats: text, json, yaml", flags.Format)
	}
}
