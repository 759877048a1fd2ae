package tools

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type SortFilesInput struct {
	Directory string `json:"directory" jsonschema:"required" jsonschema_description:"Directory whose files are sorted into category subdirectories"`
}

type CleanDirectoriesInput struct {
	Directory string `json:"directory" jsonschema:"required" jsonschema_description:"Directory to clean of empty subdirectories"`
}

var categoryByExt = map[string]string{
	".pdf": "documents", ".doc": "documents", ".docx": "documents", ".txt": "documents", ".md": "documents",
	".jpg": "images", ".jpeg": "images", ".png": "images", ".gif": "images", ".svg": "images",
	".py": "code", ".go": "code", ".js": "code", ".html": "code", ".css": "code", ".json": "code",
	".zip": "archives", ".tar": "archives", ".gz": "archives", ".rar": "archives",
	".mp3": "audio", ".wav": "audio", ".ogg": "audio",
	".mp4": "video", ".mkv": "video",
}

func (tb *Toolbox) sortFilesByTypeDef() ToolDefinition {
	return ToolDefinition{
		Name:        "sort_files_by_type",
		Description: "Organize the files of a directory into per-category subdirectories",
		InputSchema: GenerateSchema[SortFilesInput](),
		Run:         tb.sortFilesByType,
	}
}

func (tb *Toolbox) sortFilesByType(raw json.RawMessage) Result {
	var in SortFilesInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Directory == "" {
		return Fail(FailInvalidInput, errors.New("directory is required"))
	}

	entries, err := os.ReadDir(in.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return Failf(FailNotFound, "directory not found: %s", in.Directory)
		}
		return Fail(FailIO, err)
	}

	moved := 0
	categories := map[string]bool{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		category, ok := categoryByExt[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			category = "other"
		}

		dst := filepath.Join(in.Directory, category)
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return Fail(FailIO, err)
		}
		if err := os.Rename(filepath.Join(in.Directory, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return Fail(FailIO, err)
		}

		moved++
		categories[category] = true
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	return Okf("Organized %d files into %d categories (%s) in %s",
		moved, len(names), strings.Join(names, ", "), in.Directory)
}

func (tb *Toolbox) cleanEmptyDirectoriesDef() ToolDefinition {
	return ToolDefinition{
		Name:        "clean_empty_directories",
		Description: "Remove empty subdirectories",
		InputSchema: GenerateSchema[CleanDirectoriesInput](),
		Run:         tb.cleanEmptyDirectories,
	}
}

func (tb *Toolbox) cleanEmptyDirectories(raw json.RawMessage) Result {
	var in CleanDirectoriesInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Directory == "" {
		return Fail(FailInvalidInput, errors.New("directory is required"))
	}
	if _, err := os.Stat(in.Directory); err != nil {
		return Failf(FailNotFound, "directory not found: %s", in.Directory)
	}

	// Collect subdirectories deepest-first so nested empties peel away in
	// one pass.
	var dirs []string
	err := filepath.WalkDir(in.Directory, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != in.Directory {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return Fail(FailIO, err)
	}
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })

	removed := 0
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err == nil {
			removed++
		}
	}

	return Okf("Removed %d empty directories under %s", removed, in.Directory)
}
