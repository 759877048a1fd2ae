package intent

import (
	"strings"

	"github.com/ayushh0406/ai-agent/internal/tools"
)

var creationWords = []string{"create", "make", "generate", "write"}

// DefaultRoutes is the assistant's fixed dispatch vocabulary in priority
// order. downloadsDir is where "organize my downloads" points.
func DefaultRoutes(downloadsDir string) []Route {
	return []Route{
		{
			Name: "project_creation",
			Match: func(cmd string) bool {
				return containsAny(cmd, creationWords...) && strings.Contains(cmd, "project")
			},
			Build: func(cmd string) (string, any) {
				projectType := "python"
				if strings.Contains(cmd, "go project") {
					projectType = "go"
				}
				return "create_project_structure", tools.ProjectStructureInput{
					ProjectName: "smart_project",
					ProjectType: projectType,
					Features:    "AI-powered features",
				}
			},
		},
		{
			Name: "file_creation",
			Match: func(cmd string) bool {
				return containsAny(cmd, creationWords...) && strings.Contains(cmd, "file")
			},
			Build: func(cmd string) (string, any) {
				in := tools.SmartFileInput{
					Filename: "smart_document",
					Content:  "Generated by the assistant",
					FileType: fileTypeFrom(cmd),
					Template: "basic",
				}
				if in.FileType == "python" {
					in.Filename = "hello"
					in.Content = `print("Hello World!")`
				}
				return "create_smart_file", in
			},
		},
		{
			Name: "directory_analysis",
			Match: func(cmd string) bool {
				return containsAny(cmd, "analyze", "check", "review") &&
					containsAny(cmd, "directory", "folder")
			},
			Build: func(cmd string) (string, any) {
				return "analyze_directory", tools.AnalyzeDirectoryInput{
					DirectoryPath: ".",
					AnalysisType:  "overview",
				}
			},
		},
		{
			Name: "organization",
			Match: func(cmd string) bool {
				return containsAny(cmd, "organize", "sort files", "clean") &&
					containsAny(cmd, "files", "directory", "folder", "download")
			},
			Build: func(cmd string) (string, any) {
				switch {
				case strings.Contains(cmd, "download"):
					return "sort_files_by_type", tools.SortFilesInput{Directory: downloadsDir}
				case containsAny(cmd, "clean", "empty"):
					return "clean_empty_directories", tools.CleanDirectoriesInput{Directory: "."}
				default:
					return "smart_organize", tools.SmartOrganizeInput{Directory: ".", Method: "intelligent"}
				}
			},
		},
		{
			Name: "email",
			Match: func(cmd string) bool {
				return containsAny(cmd, "email", "draft")
			},
			Build: func(cmd string) (string, any) {
				in := tools.GenerateEmailInput{Purpose: "general correspondence"}
				if strings.Contains(cmd, "internship") {
					in.Purpose = "internship"
					in.Info = "I am interested in software development."
				}
				return "generate_email", in
			},
		},
		{
			Name: "journal",
			Match: func(cmd string) bool {
				return containsAny(cmd, "journal", "log", "mood")
			},
			Build: func(cmd string) (string, any) {
				return "log_journal_entry", tools.JournalEntryInput{
					Text: cmd,
					Mood: moodFrom(cmd),
				}
			},
		},
		{
			Name: "reminder",
			Match: func(cmd string) bool {
				return containsAny(cmd, "remind", "schedule", "set timer")
			},
			Build: func(cmd string) (string, any) {
				return "schedule_reminder", tools.ReminderInput{
					Task:     cmd,
					Time:     "later today",
					Priority: "medium",
				}
			},
		},
	}
}

func fileTypeFrom(cmd string) string {
	for _, fileType := range []string{"python", "markdown", "email", "json", "html"} {
		if strings.Contains(cmd, fileType) {
			return fileType
		}
	}
	return "text"
}

func moodFrom(cmd string) string {
	for _, mood := range []string{"anxious", "happy", "sad", "excited"} {
		if strings.Contains(cmd, mood) {
			return mood
		}
	}
	return "neutral"
}
