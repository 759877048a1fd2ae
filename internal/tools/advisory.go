package tools

import (
	"encoding/json"
	"errors"
)

type ReportInput struct {
	DataSource string `json:"data_source" jsonschema:"required" jsonschema_description:"What to report on"`
	ReportType string `json:"report_type,omitempty" jsonschema_description:"summary or detailed"`
}

type WorkflowInput struct {
	CurrentWorkflow string `json:"current_workflow" jsonschema:"required" jsonschema_description:"Description of the workflow"`
	Goal            string `json:"goal,omitempty" jsonschema_description:"Optimization goal"`
}

func (tb *Toolbox) generateReportDef() ToolDefinition {
	return ToolDefinition{
		Name:        "generate_report",
		Description: "Generate a report from a data source",
		InputSchema: GenerateSchema[ReportInput](),
		Run:         tb.generateReport,
	}
}

func (tb *Toolbox) generateReport(raw json.RawMessage) Result {
	var in ReportInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.DataSource == "" {
		return Fail(FailInvalidInput, errors.New("data_source is required"))
	}
	if in.ReportType == "" {
		in.ReportType = "summary"
	}
	return Okf("Generated %s report from %s", in.ReportType, in.DataSource)
}

func (tb *Toolbox) optimizeWorkflowDef() ToolDefinition {
	return ToolDefinition{
		Name:        "optimize_workflow",
		Description: "Analyze and optimize a workflow",
		InputSchema: GenerateSchema[WorkflowInput](),
		Run:         tb.optimizeWorkflow,
	}
}

func (tb *Toolbox) optimizeWorkflow(raw json.RawMessage) Result {
	var in WorkflowInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.CurrentWorkflow == "" {
		return Fail(FailInvalidInput, errors.New("current_workflow is required"))
	}
	if in.Goal == "" {
		in.Goal = "efficiency"
	}
	return Okf("Analyzed workflow, optimization suggestions target %s", in.Goal)
}
