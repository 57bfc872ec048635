package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	archive "github.com/xieguanglei/ooxml-viewer/internal/archive"
	export "github.com/xieguanglei/ooxml-viewer/internal/export"
	logging "github.com/xieguanglei/ooxml-viewer/internal/logging"
	statepkg "github.com/xieguanglei/ooxml-viewer/internal/state"
	xmlfmt "github.com/xieguanglei/ooxml-viewer/internal/xmlfmt"
)

// handleExport writes the current preview document to an HTML file in the
// configured export directory.
func (app *Application) handleExport() bool {
	doc := app.state.PreviewDoc()
	node := app.state.CurrentNode()
	if doc == nil || node == nil {
		app.state.StatusMessage = "nothing to export"
		return true
	}

	dir := app.exportDir
	if dir == "" {
		dir = "."
	}
	target := filepath.Join(dir, exportFileName(node.Path))

	if err := writeExportFile(target, node.Path, doc); err != nil {
		app.state.LastError = err
		logging.L().Error("export failed",
			zap.String("part", node.Path),
			zap.Error(err))
		return true
	}

	app.state.LastError = nil
	app.state.StatusMessage = "exported to " + target
	logging.L().Info("part exported",
		zap.String("part", node.Path),
		zap.String("file", target))
	return true
}

func writeExportFile(target, partPath string, doc *xmlfmt.Document) error {
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("export %s: %w", partPath, err)
	}
	writeErr := export.WriteHTML(f, partPath, doc)
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("export %s: %w", partPath, closeErr)
	}
	return nil
}

// exportFileName flattens a part path into a single file name.
func exportFileName(partPath string) string {
	name := strings.ReplaceAll(partPath, "/", "_")
	if name == "" {
		name = "part"
	}
	return name + ".html"
}

// handleReload re-inspects the package file and feeds the result through the
// reducer. A failed reload keeps the current tree on screen.
func (app *Application) handleReload() bool {
	entries, err := archive.InspectFile(app.packagePath)
	app.reduce(statepkg.PackageLoadedAction{
		Path:    app.packagePath,
		Entries: entries,
		Err:     err,
	})
	if err != nil {
		logging.L().Warn("reload failed",
			zap.String("path", app.packagePath),
			zap.Error(err))
		return true
	}

	app.state.StatusMessage = "reloaded"
	logging.L().Info("package reloaded",
		zap.String("path", app.packagePath),
		zap.Int("parts", app.state.PartCount))
	return true
}

// handleClipboard copies the selected part path to the system clipboard.
func (app *Application) handleClipboard() bool {
	if !app.clipboardAvail || len(app.clipboardCmd) == 0 {
		return false
	}
	path := app.state.SelectedPath()
	if path == "" {
		return false
	}

	cmd := exec.Command(app.clipboardCmd[0], app.clipboardCmd[1:]...)
	cmd.Stdin = strings.NewReader(path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		app.state.LastError = fmt.Errorf("yank: %w", err)
		return true
	}
	app.state.StatusMessage = "yanked " + path
	return true
}
