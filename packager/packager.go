package packager

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"
)

// BundleConfig holds the configuration for bundling a pattern.
type BundleConfig struct {
	Name      string                    // Name of the archive (without extension)
	OutputDir string                    // Directory to output the zip file
	Files     []string                  // Files written to disk to include
	Generated iter.Seq2[string, []byte] // In-memory entries to include, by name
}

// Bundle creates a zip file with every sheet of a pattern.
// Returns the path to the created zip file.
func Bundle(config BundleConfig) (string, error) {
	fmt.Println("Bundling pattern...")

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	zipPath := filepath.Join(config.OutputDir, config.Name+".zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("creating zip file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	for _, path := range config.Files {
		if err := addFileToZip(zipWriter, path, filepath.Base(path)); err != nil {
			_ = zipWriter.Close()
			return "", fmt.Errorf("adding %s to zip: %w", filepath.Base(path), err)
		}
	}

	if config.Generated != nil {
		for name, data := range config.Generated {
			if err := addBytesToZip(zipWriter, name, data); err != nil {
				_ = zipWriter.Close()
				return "", fmt.Errorf("adding %s to zip: %w", name, err)
			}
		}
	}

	if err := zipWriter.Close(); err != nil {
		return "", fmt.Errorf("finishing zip file: %w", err)
	}

	fmt.Printf("✅ Bundle created: %s\n", zipPath)
	return zipPath, nil
}

// addFileToZip copies a file from disk into the archive, keeping its
// modification time.
func addFileToZip(zipWriter *zip.Writer, filePath, nameInZip string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("getting file info: %w", err)
	}

	return addEntryToZip(zipWriter, nameInZip, info.ModTime(), file)
}

// addBytesToZip adds an entry that only exists in memory.
func addBytesToZip(zipWriter *zip.Writer, nameInZip string, data []byte) error {
	return addEntryToZip(zipWriter, nameInZip, time.Now(), bytes.NewReader(data))
}

// addEntryToZip writes one deflated, world-readable entry.
func addEntryToZip(zipWriter *zip.Writer, nameInZip string, modified time.Time, content io.Reader) error {
	header := &zip.FileHeader{
		Name:     filepath.ToSlash(nameInZip),
		Method:   zip.Deflate,
		Modified: modified,
	}
	header.SetMode(0644)

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating zip entry: %w", err)
	}

	if _, err := io.Copy(writer, content); err != nil {
		return fmt.Errorf("writing %s to zip: %w", nameInZip, err)
	}

	fmt.Printf("  Added: %s\n", nameInZip)
	return nil
}
