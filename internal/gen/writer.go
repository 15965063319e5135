package gen

import (
	"fmt"
	"os"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files into their package directories.
// Unformatted files are written next to the intended output as
// *.unformatted.go so the intended file is never replaced by broken code.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if file.Unformatted {
			if err := writeDebugUnformatted(file.Dir, file.Filename, file.Content); err != nil {
				return fmt.Errorf("writing unformatted %s: %w", file.Path(), err)
			}

			continue
		}

		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path(), err)
		}
	}

	return nil
}
