// launchericons generates the bouncing-balls launcher icon for every Android
// density bucket.
// Usage: go run ./cmd/launchericons [--dir icon_physics_demo_tmp]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rebroad/androidballs/internal/launcher"
	"github.com/rebroad/androidballs/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type options struct {
	dir     string
	help    bool
	version bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'launchericons --help' for usage.\n")
		os.Exit(1)
	}
	switch {
	case opts.help:
		printUsage(os.Stdout)
		return
	case opts.version:
		fmt.Printf("launchericons %s (built %s)\n", version, buildDate)
		return
	}

	written, err := launcher.Generate(opts.dir)
	for _, p := range written {
		fmt.Printf("Generated: %s\n", p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nAll launcher icons generated in '%s/'\n", opts.dir)
}

func parseArgs(args []string) (options, error) {
	opts := options{dir: paths.LauncherDirName}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h", "help":
			opts.help = true
		case "--version", "-V", "version":
			opts.version = true
		case "--dir", "-d":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--dir requires a directory")
			}
			opts.dir = args[i+1]
			i++
		default:
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "launchericons %s - Generate bouncing-balls launcher icons\n", version)
	fmt.Fprintf(w, `
Usage:
  launchericons [options]

Options:
  --dir, -d <dir>       Output directory, created if missing (default: %s)
  version, -V           Show version and build date
  help, -h, --help      Show this help message

Sizes:
`, paths.LauncherDirName)
	for _, d := range launcher.Densities {
		fmt.Fprintf(w, "  %-9s %3dx%-3d  %s\n", d.Name, d.Size, d.Size, launcher.FileName(d))
	}
}
