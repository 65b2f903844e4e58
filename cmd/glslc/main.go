// Command glslc is the uniglsl shader front-end CLI.
//
// Usage:
//
//	glslc [options] <input>...
//	glslc -config glslc.toml
//
// Examples:
//
//	glslc sprite.vert                  # Scan and list declarations
//	glslc -tokens sprite.vert          # Print the token stream
//	glslc -config glslc.toml           # Load, reflect and link every program
//
// A manifest lists vertex/fragment pairs:
//
//	root = "shaders"
//
//	[[program]]
//	name = "sprite"
//	vertex = "sprite.vert"
//	fragment = "sprite.frag"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/uniglsl"
)

var (
	tokens  = flag.Bool("tokens", false, "print the token stream instead of declarations")
	strict  = flag.Bool("strict", false, "do not skip preprocessor lines and function bodies")
	config  = flag.String("config", "", "TOML manifest of programs to link")
	verbose = flag.Bool("v", false, "verbose (debug) logging")
	version = flag.Bool("version", false, "print version")
)

const glslcVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("glslc version %s\n", glslcVersion)
		return
	}
	if *verbose {
		uniglsl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *config != "" {
		os.Exit(runManifest(*config))
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	status := 0
	for _, path := range args {
		if err := runFile(path); err != nil {
			printError("Error", err)
			status = 1
		}
	}
	os.Exit(status)
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	printBanner(path)

	if *tokens {
		toks, err := uniglsl.Tokenize(string(source))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return printTokens(toks)
	}

	opts := uniglsl.DefaultScanOptions()
	if *strict {
		opts = uniglsl.ScanOptions{}
	}
	decls, err := uniglsl.ScanWithOptions(string(source), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return printDeclarations(decls)
}

func runManifest(path string) int {
	m, root, err := loadManifest(path)
	if err != nil {
		printError("Config Error", err)
		return 1
	}

	fsys := os.DirFS(root)
	status := 0
	for _, p := range m.Programs {
		printBanner(p.Name)
		prog, err := uniglsl.LoadProgram(context.Background(), fsys, p.Vertex, p.Fragment)
		if err != nil {
			printError("Error", err)
			status = 1
			continue
		}
		if err := printProgram(prog.Binding); err != nil {
			printError("Error", err)
			status = 1
			continue
		}
		printSuccess("Linked", fmt.Sprintf("%s (%s + %s)", p.Name, p.Vertex, p.Fragment))
	}
	return status
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: glslc [options] <input>...\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  glslc sprite.vert               List declarations\n")
	fmt.Fprintf(os.Stderr, "  glslc -tokens sprite.vert       Print tokens\n")
	fmt.Fprintf(os.Stderr, "  glslc -config glslc.toml        Link every program in the manifest\n")
}
