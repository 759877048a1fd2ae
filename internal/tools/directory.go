package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type AnalyzeDirectoryInput struct {
	DirectoryPath string `json:"directory_path" jsonschema:"required" jsonschema_description:"Directory to analyze"`
	AnalysisType  string `json:"analysis_type,omitempty" jsonschema_description:"Currently only overview"`
}

type SmartOrganizeInput struct {
	Directory string `json:"directory" jsonschema:"required" jsonschema_description:"Directory to organize"`
	Method    string `json:"method,omitempty" jsonschema_description:"Organization method"`
}

func (tb *Toolbox) analyzeDirectoryDef() ToolDefinition {
	return ToolDefinition{
		Name:        "analyze_directory",
		Description: "Analyze directory structure and provide insights",
		InputSchema: GenerateSchema[AnalyzeDirectoryInput](),
		Run:         tb.analyzeDirectory,
	}
}

func (tb *Toolbox) analyzeDirectory(raw json.RawMessage) Result {
	var in AnalyzeDirectoryInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.DirectoryPath == "" {
		return Fail(FailInvalidInput, errors.New("directory_path is required"))
	}
	if in.AnalysisType == "" {
		in.AnalysisType = "overview"
	}

	info, err := os.Stat(in.DirectoryPath)
	if err != nil || !info.IsDir() {
		return Failf(FailNotFound, "directory not found: %s", in.DirectoryPath)
	}

	var (
		files, dirs int
		totalSize   int64
	)
	walkErr := filepath.WalkDir(in.DirectoryPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree, keep counting the rest
			return fs.SkipDir
		}
		if path == in.DirectoryPath {
			return nil
		}
		if d.IsDir() {
			dirs++
			return nil
		}
		files++
		if fi, err := d.Info(); err == nil {
			totalSize += fi.Size()
		}
		return nil
	})
	if walkErr != nil {
		return Fail(FailIO, walkErr)
	}

	return Okf(`Directory analysis: %s
- Files: %d
- Directories: %d
- Total size: %.2f MB`,
		in.DirectoryPath, files, dirs, float64(totalSize)/(1024*1024))
}

func (tb *Toolbox) smartOrganizeDef() ToolDefinition {
	return ToolDefinition{
		Name:        "smart_organize",
		Description: "Organize files using intelligent categorization",
		InputSchema: GenerateSchema[SmartOrganizeInput](),
		Run:         tb.smartOrganize,
	}
}

// smartOrganize is advisory: it reports what would be reorganized but
// delegates actual moves to sort_files_by_type.
func (tb *Toolbox) smartOrganize(raw json.RawMessage) Result {
	var in SmartOrganizeInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Directory == "" {
		return Fail(FailInvalidInput, errors.New("directory is required"))
	}
	if in.Method == "" {
		in.Method = "intelligent"
	}
	return Ok(fmt.Sprintf("Would organize %s using the %s method; say 'sort files in %s' to apply", in.Directory, in.Method, in.Directory))
}
