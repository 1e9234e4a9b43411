package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"

	"github.com/erraggy/keycase"
	"github.com/erraggy/keycase/cmd/keycase/commands"
)

// commandNames lists the commands suggestCommand can offer.
var commandNames = []string{"convert", "styles", "version", "help"}

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 2

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("keycase %s\n", keycase.Version())
		if len(os.Args) > 2 && (os.Args[2] == "-verbose" || os.Args[2] == "--verbose") {
			fmt.Println(keycase.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "styles":
		if err := commands.HandleStyles(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within maxSuggestDistance edits.
func suggestCommand(input string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`keycase - rewrite the keys of JSON, YAML and MessagePack documents

Usage:
  keycase <command> [options]

Commands:
  convert    Convert every key of a document to one naming style
  styles     List the supported key styles
  version    Show version information (--verbose for build details)
  help       Show this help message

Examples:
  keycase convert config.json
  keycase convert --case camel -o out.yaml config.yaml
  keycase styles

Run 'keycase <command> --help' for more information on a command.`)
}
