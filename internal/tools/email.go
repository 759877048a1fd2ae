package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type GenerateEmailInput struct {
	Purpose   string `json:"purpose" jsonschema:"required" jsonschema_description:"What the email is about, e.g. internship"`
	Recipient string `json:"recipient,omitempty" jsonschema_description:"Addressee name"`
	Sender    string `json:"sender,omitempty" jsonschema_description:"Signature name"`
	Info      string `json:"info,omitempty" jsonschema_description:"Additional context to include"`
}

type SaveDraftInput struct {
	Content  string `json:"content" jsonschema:"required" jsonschema_description:"Full email text"`
	Filename string `json:"filename,omitempty" jsonschema_description:"Draft file name, defaults to a timestamped name"`
}

func (tb *Toolbox) generateEmailDef() ToolDefinition {
	return ToolDefinition{
		Name:        "generate_email",
		Description: "Generate a professional email",
		InputSchema: GenerateSchema[GenerateEmailInput](),
		Run:         tb.generateEmail,
	}
}

func (tb *Toolbox) generateEmail(raw json.RawMessage) Result {
	var in GenerateEmailInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Purpose == "" {
		return Fail(FailInvalidInput, errors.New("purpose is required"))
	}
	if in.Recipient == "" {
		in.Recipient = "Sir/Madam"
	}
	if in.Sender == "" {
		in.Sender = "User"
	}

	body := fmt.Sprintf("I am writing to you regarding %s.", in.Purpose)
	if in.Info != "" {
		body += " " + in.Info
	}

	email := fmt.Sprintf(`Subject: Regarding %s

Dear %s,

%s

Thank you for your time and consideration.

Best regards,
%s
`, in.Purpose, in.Recipient, body, in.Sender)

	return Ok(email)
}

func (tb *Toolbox) saveEmailDraftDef() ToolDefinition {
	return ToolDefinition{
		Name:        "save_email_draft",
		Description: "Save an email as a draft file",
		InputSchema: GenerateSchema[SaveDraftInput](),
		Run:         tb.saveEmailDraft,
	}
}

func (tb *Toolbox) saveEmailDraft(raw json.RawMessage) Result {
	var in SaveDraftInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Content == "" {
		return Fail(FailInvalidInput, errors.New("content is required"))
	}
	if in.Filename == "" {
		in.Filename = "draft_" + tb.now().Format("20060102_150405") + ".txt"
	}

	if err := os.MkdirAll(tb.cfg.DraftsDir, 0o755); err != nil {
		return Fail(FailIO, err)
	}

	path := filepath.Join(tb.cfg.DraftsDir, in.Filename)
	if err := os.WriteFile(path, []byte(in.Content), 0o644); err != nil {
		return Fail(FailIO, err)
	}

	return Okf("Email draft saved: %s", path)
}
