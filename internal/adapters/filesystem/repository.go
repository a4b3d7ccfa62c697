package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"launchpad/internal/application"
	"launchpad/internal/domain"
)

// Repository implements ports.SiteRepository on the local filesystem.
type Repository struct {
	sourceDir string
	outputDir string
}

// NewRepository creates a repository scanning sourceDir and writing the
// index into outputDir. Same-directory operation is the special case
// where both are equal and the href prefix collapses to empty.
func NewRepository(sourceDir, outputDir string) *Repository {
	return &Repository{
		sourceDir: expandHome(sourceDir),
		outputDir: expandHome(outputDir),
	}
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// SourceDir returns the normalized source directory.
func (r *Repository) SourceDir() string { return r.sourceDir }

// OutputDir returns the normalized output directory.
func (r *Repository) OutputDir() string { return r.outputDir }

// Scan walks the source tree and returns every qualifying markup file
// as an Entry, sorted case-insensitively by href. A file qualifies if
// its name carries the exact .html suffix and is not the reserved
// index.html itself.
func (r *Repository) Scan() ([]domain.Entry, error) {
	info, err := os.Stat(r.sourceDir)
	if err != nil || !info.IsDir() {
		return nil, &application.DirectoryNotFoundError{Path: r.sourceDir}
	}

	hrefPrefix, err := filepath.Rel(r.outputDir, r.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to relate source to output: %w", err)
	}
	if hrefPrefix == "." {
		hrefPrefix = ""
	}

	var entries []domain.Entry
	err = filepath.WalkDir(r.sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if !strings.HasSuffix(name, domain.MarkupSuffix) || name == domain.IndexFileName {
			return nil
		}

		rel, err := filepath.Rel(r.sourceDir, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}

		subfolder := filepath.Dir(rel)
		if subfolder == "." {
			subfolder = ""
		}

		href := rel
		if hrefPrefix != "" {
			href = filepath.Join(hrefPrefix, rel)
		}

		entries = append(entries, domain.Entry{
			Href:      filepath.ToSlash(href),
			Subfolder: filepath.ToSlash(subfolder),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", r.sourceDir, err)
	}

	domain.SortEntries(entries)
	return entries, nil
}

// WriteIndex persists the rendered page as index.html in the output
// directory. The page is written to a temp file first and renamed into
// place so a failed write never leaves a partial index behind.
func (r *Repository) WriteIndex(page []byte) (string, error) {
	info, err := os.Stat(r.outputDir)
	if err != nil || !info.IsDir() {
		return "", &application.DirectoryNotFoundError{Path: r.outputDir}
	}

	dst := filepath.Join(r.outputDir, domain.IndexFileName)

	tmp, err := os.CreateTemp(r.outputDir, domain.IndexFileName+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp index: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(page); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to close temp index: %w", err)
	}

	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to replace index: %w", err)
	}

	return dst, nil
}
