package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// UnformattedName returns the sidecar name used for code the formatter
// rejected.
func UnformattedName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. Keeping the .go suffix lets editors highlight it.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, UnformattedName(filename)), content, filePerm)
}
