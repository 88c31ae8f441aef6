// Package settings resolves the sync configuration of a package: from the
// remote manifest first, then from the copy cached on disk.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// FileName returns the settings file name for packageName.
func FileName(packageName string) string {
	return "settings_" + domain.PackageSuffix(packageName) + ".json"
}

// Writer persists the settings bundled with a package.
type Writer struct {
	dir string
	log logger.Logger
}

// NewWriter creates a writer storing files under dir.
func NewWriter(dir string, log logger.Logger) *Writer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Writer{dir: dir, log: log}
}

// Path returns where the settings of packageName are stored.
func (w *Writer) Path(packageName string) string {
	return filepath.Join(w.dir, FileName(packageName))
}

// Write stores the settings payload of pkg, pretty-printed. A package without
// settings is skipped with a warning and leaves any existing file untouched.
func (w *Writer) Write(pkg domain.PackageInfo) error {
	if !pkg.HasSettings() {
		w.log.Warn("No settings to write",
			logger.Package(pkg.PackageName),
		)
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, pkg.Settings, "", "  "); err != nil {
		return fmt.Errorf("format settings of %s: %w", pkg.PackageName, err)
	}
	pretty.WriteByte('\n')

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	path := w.Path(pkg.PackageName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, pretty.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write settings of %s: %w", pkg.PackageName, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write settings of %s: %w", pkg.PackageName, err)
	}

	w.log.Debug("Settings written",
		logger.Package(pkg.PackageName),
		logger.String("path", path),
	)
	return nil
}
