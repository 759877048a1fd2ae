package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type ProjectStructureInput struct {
	ProjectName string `json:"project_name" jsonschema:"required" jsonschema_description:"Name of the project directory"`
	ProjectType string `json:"project_type" jsonschema:"required" jsonschema_description:"Project kind, e.g. python"`
	Features    string `json:"features,omitempty" jsonschema_description:"Free-text feature list for the README"`
}

func (tb *Toolbox) createProjectStructureDef() ToolDefinition {
	return ToolDefinition{
		Name:        "create_project_structure",
		Description: "Create a complete project structure with boilerplate",
		InputSchema: GenerateSchema[ProjectStructureInput](),
		Run:         tb.createProjectStructure,
	}
}

func (tb *Toolbox) createProjectStructure(raw json.RawMessage) Result {
	var in ProjectStructureInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.ProjectName == "" || in.ProjectType == "" {
		return Fail(FailInvalidInput, errors.New("project_name and project_type are required"))
	}

	projectDir := filepath.Join(tb.cfg.ProjectsDir, in.ProjectName)
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return Fail(FailIO, err)
	}

	if strings.ToLower(in.ProjectType) == "python" {
		for _, sub := range []string{"src", "tests", "docs"} {
			if err := os.MkdirAll(filepath.Join(projectDir, sub), 0o755); err != nil {
				return Fail(FailIO, err)
			}
		}

		readme := fmt.Sprintf(`# %s

A Python project created by the smart assistant.

## Features
%s

## Setup
`+"```bash"+`
pip install -r requirements.txt
`+"```"+`
`, in.ProjectName, in.Features)

		boilerplate := map[string]string{
			"README.md":        readme,
			"requirements.txt": "# Add your dependencies here\n",
			filepath.Join("src", "__init__.py"): "# Package initialization\n",
		}
		for name, body := range boilerplate {
			if err := os.WriteFile(filepath.Join(projectDir, name), []byte(body), 0o644); err != nil {
				return Fail(FailIO, err)
			}
		}
	}

	return Okf("Project structure created: %s", projectDir)
}
