package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// SetupDevDir creates a development directory in t.TempDir() with an empty
// images directory and a bspconfig holding values. Returns the devdir root.
//
// Example:
//
//	devdir := testutil.SetupDevDir(t, map[string]string{
//		"CONFIG_INSTALLER_MODE_ATTACHED_BOARD": "y",
//	})
//	testutil.WriteImage(t, devdir, "images/kernel.uImage", 3<<20)
func SetupDevDir(t *testing.T, values map[string]string) string {
	t.Helper()

	devdir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(devdir, ImagesDir), 0o755); err != nil {
		t.Fatalf("Failed to create images dir: %v", err)
	}
	WriteBSPConfig(t, devdir, values)
	return devdir
}

// WriteBSPConfig writes values as a kernel style .config file, replacing any
// existing bspconfig. Options are written in sorted order.
func WriteBSPConfig(t *testing.T, devdir string, values map[string]string) {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("#\n# Automatically generated file; DO NOT EDIT.\n#\n")
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%s\n", k, values[k])
	}

	path := filepath.Join(devdir, BSPConfigPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create bspconfig dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("Failed to write bspconfig: %v", err)
	}
}

// WriteImage creates a sparse image file of size bytes at rel inside devdir.
// Returns the absolute path.
func WriteImage(t *testing.T, devdir, rel string, size int64) string {
	t.Helper()

	path := filepath.Join(devdir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create image dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create image %s: %v", rel, err)
	}
	defer f.Close()
	if err := f.Truncate(size); err != nil {
		t.Fatalf("Failed to size image %s: %v", rel, err)
	}
	return path
}
