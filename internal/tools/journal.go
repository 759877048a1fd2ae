package tools

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type JournalEntryInput struct {
	Text string `json:"text" jsonschema:"required" jsonschema_description:"Entry body"`
	Mood string `json:"mood,omitempty" jsonschema_description:"Mood label, defaults to neutral"`
	Tags string `json:"tags,omitempty" jsonschema_description:"Comma-separated tags"`
}

type MoodSummaryInput struct {
	Days int `json:"days,omitempty" jsonschema_description:"Look-back window in days, default 7"`
}

type JournalSearchInput struct {
	Keyword string `json:"keyword" jsonschema:"required" jsonschema_description:"Keyword to search for"`
	Days    int    `json:"days,omitempty" jsonschema_description:"Look-back window in days, default 30"`
}

type journalEntry struct {
	Text      string    `json:"text"`
	Mood      string    `json:"mood"`
	Tags      string    `json:"tags,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (tb *Toolbox) journalPath() string {
	return filepath.Join(tb.cfg.JournalDir, "journal.jsonl")
}

func (tb *Toolbox) logJournalEntryDef() ToolDefinition {
	return ToolDefinition{
		Name:        "log_journal_entry",
		Description: "Add a journal entry with mood and tags",
		InputSchema: GenerateSchema[JournalEntryInput](),
		Run:         tb.logJournalEntry,
	}
}

func (tb *Toolbox) logJournalEntry(raw json.RawMessage) Result {
	var in JournalEntryInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Text == "" {
		return Fail(FailInvalidInput, errors.New("text is required"))
	}
	if in.Mood == "" {
		in.Mood = "neutral"
	}

	if err := os.MkdirAll(tb.cfg.JournalDir, 0o755); err != nil {
		return Fail(FailIO, err)
	}

	line, err := json.Marshal(journalEntry{
		Text:      in.Text,
		Mood:      in.Mood,
		Tags:      in.Tags,
		Timestamp: tb.now(),
	})
	if err != nil {
		return Fail(FailIO, err)
	}

	f, err := os.OpenFile(tb.journalPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Fail(FailIO, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return Fail(FailIO, err)
	}

	return Okf("Journal entry logged (mood=%s)", in.Mood)
}

func (tb *Toolbox) readJournal(since time.Time) ([]journalEntry, error) {
	f, err := os.Open(tb.journalPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []journalEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e journalEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue // skip malformed lines
		}
		if e.Timestamp.Before(since) {
			continue
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

func (tb *Toolbox) moodSummaryDef() ToolDefinition {
	return ToolDefinition{
		Name:        "get_mood_summary",
		Description: "Summarize moods over recent days",
		InputSchema: GenerateSchema[MoodSummaryInput](),
		Run:         tb.moodSummary,
	}
}

func (tb *Toolbox) moodSummary(raw json.RawMessage) Result {
	var in MoodSummaryInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Days <= 0 {
		in.Days = 7
	}

	entries, err := tb.readJournal(tb.now().AddDate(0, 0, -in.Days))
	if err != nil {
		return Fail(FailIO, err)
	}
	if len(entries) == 0 {
		return Okf("No journal entries in the last %d days", in.Days)
	}

	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Mood]++
	}

	moods := make([]string, 0, len(counts))
	for mood := range counts {
		moods = append(moods, mood)
	}
	sort.Strings(moods)

	parts := make([]string, 0, len(moods))
	for _, mood := range moods {
		parts = append(parts, fmt.Sprintf("%s x%d", mood, counts[mood]))
	}

	return Okf("Mood summary for the last %d days (%d entries): %s",
		in.Days, len(entries), strings.Join(parts, ", "))
}

func (tb *Toolbox) searchJournalDef() ToolDefinition {
	return ToolDefinition{
		Name:        "search_journal_entries",
		Description: "Search journal entries for a keyword",
		InputSchema: GenerateSchema[JournalSearchInput](),
		Run:         tb.searchJournal,
	}
}

func (tb *Toolbox) searchJournal(raw json.RawMessage) Result {
	var in JournalSearchInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return Fail(FailInvalidInput, err)
	}
	if in.Keyword == "" {
		return Fail(FailInvalidInput, errors.New("keyword is required"))
	}
	if in.Days <= 0 {
		in.Days = 30
	}

	entries, err := tb.readJournal(tb.now().AddDate(0, 0, -in.Days))
	if err != nil {
		return Fail(FailIO, err)
	}

	keyword := strings.ToLower(in.Keyword)
	var hits []string
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Text), keyword) {
			hits = append(hits, fmt.Sprintf("[%s] %s", e.Timestamp.Format("2006-01-02"), e.Text))
		}
	}
	if len(hits) == 0 {
		return Okf("No entries matching %q in the last %d days", in.Keyword, in.Days)
	}

	return Okf("Found %d entries matching %q:\n%s", len(hits), in.Keyword, strings.Join(hits, "\n"))
}
