// appicon generates the 512×512 application icon.
// Usage: go run ./cmd/appicon [--out app_icon.png] [--font <dir>]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rebroad/androidballs/internal/appicon"
	"github.com/rebroad/androidballs/internal/fonts"
	"github.com/rebroad/androidballs/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type options struct {
	out      string
	fontDirs []string
	help     bool
	version  bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'appicon --help' for usage.\n")
		os.Exit(1)
	}
	switch {
	case opts.help:
		printUsage(os.Stdout)
		return
	case opts.version:
		fmt.Printf("appicon %s (built %s)\n", version, buildDate)
		return
	}

	res, err := appicon.Generate(opts.out, opts.fontDirs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if res.Fallback {
		fmt.Fprintf(os.Stderr, "Note: %s not found, using built-in font\n", appicon.FontName)
	}
	fmt.Printf("Icon generated: %s\n", res.Path)
}

func parseArgs(args []string) (options, error) {
	opts := options{out: paths.AppIconFileName}
	var extra []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h", "help":
			opts.help = true
		case "--version", "-V", "version":
			opts.version = true
		case "--out", "-o":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--out requires a file path")
			}
			opts.out = args[i+1]
			i++
		case "--font", "-f":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--font requires a directory")
			}
			extra = append(extra, args[i+1])
			i++
		default:
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	opts.fontDirs = append(extra, fonts.SearchDirs...)
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "appicon %s - Generate the %dx%d %q application icon\n", version, appicon.Size, appicon.Size, appicon.Text)
	fmt.Fprintf(w, `
Usage:
  appicon [options]

Options:
  --out, -o <file>      Output file (default: %s)
  --font, -f <dir>      Extra directory to search for %s
  version, -V           Show version and build date
  help, -h, --help      Show this help message

Without %s the built-in bitmap font is used.
`, paths.AppIconFileName, appicon.FontName, appicon.FontName)
}
