package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/internal/cliutil"
	"github.com/erraggy/keycase/logging"
	"github.com/erraggy/keycase/multicase"
	"github.com/erraggy/keycase/naming"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Case        string
	Format      string
	InputFormat string
	Output      string
	Indent      int
	UserCase    bool
	Dump        bool
	Collisions  bool
	Log         LogFlags
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	styles := strings.Join(naming.StyleNames(), ", ")
	fs.StringVar(&flags.Case, "c", "snake", "key style: "+styles)
	fs.StringVar(&flags.Case, "case", "snake", "key style: "+styles)
	fs.StringVar(&flags.Format, "f", "", "output format: json, yaml, msgpack (default: input format)")
	fs.StringVar(&flags.Format, "format", "", "output format: json, yaml, msgpack (default: input format)")
	fs.StringVar(&flags.InputFormat, "input-format", "", "input format (default: from file extension or content)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.IntVar(&flags.Indent, "indent", 2, "indentation width for json and yaml output (0 for compact json)")
	fs.BoolVar(&flags.UserCase, "user-case", false, "emit the original keys instead of the converted ones")
	fs.BoolVar(&flags.Dump, "dump", false, "print the converted tree and its reverse key map to stderr")
	fs.BoolVar(&flags.Collisions, "collisions", false, "report keys dropped because they collided after conversion")
	fs.StringVar(&flags.Log.Level, "log-level", "", "enable logging at level: debug, info, warn, error, critical")
	fs.StringVar(&flags.Log.Backend, "log-backend", "", "logging backend: slog, logrus")
	fs.StringVar(&flags.Log.Format, "log-format", "", "log line format: text, json")
	fs.StringVar(&flags.Log.Dir, "log-file", "", "enable logging to the daily log file under `dir`/logs")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: keycase convert [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Rewrite every key of a JSON, YAML or MessagePack document into one naming style.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  keycase convert config.json\n")
		cliutil.Writef(fs.Output(), "  keycase convert --case camel -o out.yaml config.yaml\n")
		cliutil.Writef(fs.Output(), "  keycase convert --format msgpack -o data.mpk data.json\n")
		cliutil.Writef(fs.Output(), "  cat payload.json | keycase convert --case kebab -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Keys inside sequences are converted too\n")
		cliutil.Writef(fs.Output(), "  - When two keys convert to the same key, the first one is kept\n")
		cliutil.Writef(fs.Output(), "  - Logging can also be enabled with KEYCASE_LOG_ENABLE and KEYCASE_LOG_LEVEL\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(args, os.Stdin, os.Stdout, os.Stderr)
}

func runConvert(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path or '-' for stdin")
	}
	inputPath := fs.Arg(0)

	style, err := naming.ParseStyle(flags.Case)
	if err != nil {
		return err
	}
	if flags.Indent < 0 {
		return fmt.Errorf("invalid indent %d: must not be negative", flags.Indent)
	}

	var inFormat, outFormat codec.Format
	if flags.InputFormat != "" {
		if inFormat, err = codec.ParseFormat(flags.InputFormat); err != nil {
			return err
		}
	}
	if flags.Format != "" {
		if outFormat, err = codec.ParseFormat(flags.Format); err != nil {
			return err
		}
	}

	logger, closeLog, err := flags.Log.NewLogger(stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	data, err := readInput(inputPath, stdin)
	if err != nil {
		return err
	}
	if inFormat == "" {
		inFormat = inputFormat(inputPath, data)
	}
	if outFormat == "" {
		outFormat = inFormat
	}
	logger = logger.With("input", FormatInputPath(inputPath))

	src, err := logging.TimedValue(logger, "decode", func() (*multicase.Map, error) {
		return codec.DecodeMap(data, inFormat)
	})
	if err != nil {
		return fmt.Errorf("decoding %s: %w", FormatInputPath(inputPath), err)
	}

	dict, err := logging.TimedValue(logger, "convert", func() (*multicase.Dict, error) {
		return multicase.New(src, style.Handler(), multicase.WithLogger(logger))
	})
	if err != nil {
		return fmt.Errorf("converting keys: %w", err)
	}

	if flags.Dump {
		dumpDict(stderr, dict)
	}
	if flags.Collisions {
		reportCollisions(stderr, dict)
	}

	var out multicase.Value = dict
	if flags.UserCase {
		out = dict.UserCase()
	}

	encoded, err := encodeOutput(out, outFormat, flags.Indent)
	if err != nil {
		return err
	}
	logger.Info("converted document", "style", style.String(), "format", outFormat.String(), "keys", dict.Len())

	if flags.Output != "" {
		in := inputPath
		if in == StdinFilePath {
			in = ""
		}
		return cliutil.WriteFile(flags.Output, in, encoded)
	}
	if _, err := stdout.Write(encoded); err != nil {
		return fmt.Errorf("writing converted document to stdout: %w", err)
	}
	return nil
}

// inputFormat picks the format from the file extension, then the content.
func inputFormat(path string, data []byte) codec.Format {
	if path != StdinFilePath {
		if f, ok := codec.FormatFromPath(path); ok {
			return f
		}
	}
	return codec.DetectFormat(data)
}

func encodeOutput(v multicase.Value, format codec.Format, indent int) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if indent == 0 {
		data, err = codec.Encode(v, format)
	} else {
		data, err = codec.EncodeIndent(v, format, strings.Repeat(" ", indent))
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s output: %w", format, err)
	}
	if format == codec.FormatJSON && indent == 0 {
		data = append(data, '\n')
	}
	return data, nil
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// dumpDict prints the converted tree and the top-level reverse map.
func dumpDict(w io.Writer, d *multicase.Dict) {
	cliutil.Writef(w, "Converted tree:\n%s", dumpConfig.Sdump(multicase.ToGo(d)))
	cliutil.Writef(w, "Reverse key map:\n%s", dumpConfig.Sdump(d.ReverseMap()))
}

// reportCollisions prints every dropped key at every level of d.
func reportCollisions(w io.Writer, d *multicase.Dict) {
	n := walkCollisions("", d, func(path string, c multicase.Collision) {
		cliutil.Writef(w, "collision at %s: dropped %q, kept %q (both become %q)\n",
			displayPath(path), c.Key, c.KeptKey, c.CasedKey)
	})
	cliutil.Writef(w, "%d collision(s)\n", n)
}

func walkCollisions(path string, v multicase.Value, fn func(string, multicase.Collision)) int {
	count := 0
	switch tv := v.(type) {
	case *multicase.Dict:
		for _, c := range tv.Collisions() {
			fn(path, c)
			count++
		}
		for k, child := range tv.All() {
			childPath := k
			if path != "" {
				childPath = path + "." + k
			}
			count += walkCollisions(childPath, child, fn)
		}
	case multicase.List:
		for i, item := range tv {
			count += walkCollisions(path+"["+strconv.Itoa(i)+"]", item, fn)
		}
	}
	return count
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
