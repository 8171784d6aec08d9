package parser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileEntry describes a spreadsheet file in a repository directory.
type FileEntry struct {
	// Title is the file name shown to users.
	Title string `json:"title"`
	// Extension is the lowercase extension without the dot.
	Extension string `json:"extension"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
}

// IsSpreadsheet reports whether a file name has an Excel-like extension
// (xls, xlsx, xlsm, ...).
func IsSpreadsheet(name string) bool {
	return strings.Contains(extension(name), "xls")
}

func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// ListSpreadsheets returns the spreadsheet files directly inside dir,
// sorted by title.
func ListSpreadsheets(dir string) ([]FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var result []FileEntry
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsSpreadsheet(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		result = append(result, FileEntry{
			Title:     e.Name(),
			Extension: extension(e.Name()),
			Size:      info.Size(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Title < result[j].Title
	})
	return result, nil
}
