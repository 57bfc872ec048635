package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/xieguanglei/ooxml-viewer/internal/app"
	"github.com/xieguanglei/ooxml-viewer/internal/archive"
	"github.com/xieguanglei/ooxml-viewer/internal/config"
	"github.com/xieguanglei/ooxml-viewer/internal/export"
	"github.com/xieguanglei/ooxml-viewer/internal/logging"
	"github.com/xieguanglei/ooxml-viewer/internal/parttree"
	"github.com/xieguanglei/ooxml-viewer/internal/xmlfmt"
)

func printHelp() {
	fmt.Print(`ooxml-viewer - Terminal viewer for OOXML packages

USAGE:
    ooxml-viewer FILE                Open FILE in the interactive viewer
    ooxml-viewer -l FILE             List the part tree and exit
    ooxml-viewer -x FILE PART        Write PART as HTML to stdout and exit

OPTIONS:
    -h, --help      Show this help message and exit
    -l, --list      Print the part tree without starting the UI
    -x, --export    Export one part as a standalone HTML page

Settings are read from ~/.config/ooxml-viewer/config.ini when present.
`)
}

func main() {
	// Set UTF-8 as fallback encoding so part names and XML content render
	// on terminals without locale detection.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "-h", "--help":
		printHelp()
		os.Exit(0)
	case "-l", "--list":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Error: --list requires a package file")
			os.Exit(2)
		}
		if err := listParts(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	case "-x", "--export":
		if len(os.Args) < 4 {
			fmt.Fprintln(os.Stderr, "Error: --export requires a package file and a part path")
			os.Exit(2)
		}
		if err := exportPart(os.Args[2], os.Args[3]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	runViewer(os.Args[1])
}

func runViewer(packagePath string) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logging.Init(logging.Config{File: cfg.Log.File, Level: cfg.Log.Level}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logging.Sync()
	}()

	app, err := apppkg.NewApplication(packagePath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", packagePath, err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}

// listParts prints the package hierarchy as indented text, directories
// first the way the interactive tree orders them.
func listParts(packagePath string) error {
	entries, err := archive.InspectFile(packagePath)
	if err != nil {
		return err
	}
	root := parttree.Build(entries)
	for _, child := range root.Children {
		printNode(child, 0)
	}
	fmt.Printf("%d parts\n", parttree.FileCount(root))
	return nil
}

func printNode(node *parttree.Node, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	if node.IsDir {
		fmt.Printf("%s/\n", node.Name)
		for _, child := range node.Children {
			printNode(child, depth+1)
		}
		return
	}
	fmt.Printf("%s (%d bytes)\n", node.Name, node.Size)
}

// exportPart writes one textual part as an HTML page on stdout.
func exportPart(packagePath, partPath string) error {
	entries, err := archive.InspectFile(packagePath)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Path != partPath || entry.IsDir {
			continue
		}
		if entry.Content == nil {
			return fmt.Errorf("part %s is not textual", partPath)
		}
		return export.WriteHTML(os.Stdout, partPath, xmlfmt.Format(*entry.Content))
	}
	return fmt.Errorf("part %s not found in %s", partPath, packagePath)
}
