package formatters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ChatFunc sends a prompt to the ai-service and returns its raw output.
type ChatFunc func(ctx context.Context, input string) (string, error)

type SummaryFormatter struct {
	chat     ChatFunc
	language string
}

func NewSummaryFormatter(chat ChatFunc, language string) *SummaryFormatter {
	return &SummaryFormatter{chat: chat, language: language}
}

const summaryMaxLen = 600

// Format asks for a professional summary of the payload. The result holds a
// single "summary" key.
func (sf *SummaryFormatter) Format(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	instr := fmt.Sprintf("LANGUAGE: Write the summary in %s.\n\n"+
		"Return ONLY a single JSON object with the key 'summary'.\n\n"+
		"CRITICAL:\n"+
		"- summary: 2-3 sentences, 150-400 characters, first person omitted\n"+
		"- mention the strongest skills and at most two projects by title\n"+
		"- do NOT invent employers, degrees or certifications that are not in the payload\n"+
		"- no markdown, no code fences", sf.language)

	userCtx := map[string]interface{}{"payload": payload, "instructions": instr}
	b, err := json.Marshal(userCtx)
	if err != nil {
		return nil, err
	}

	output, err := sf.chat(ctx, "Write resume summary:\n"+string(b))
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(output), &out); err != nil {
		// Try extracting JSON from the response if wrapped in markdown
		sub, ok := extractObject(output)
		if !ok {
			return nil, fmt.Errorf("ai-service returned non-json content: %w", err)
		}
		if err2 := json.Unmarshal([]byte(sub), &out); err2 != nil {
			return nil, fmt.Errorf("ai-service returned non-json content: %w", err2)
		}
	}

	if err := sanitizeSummary(out); err != nil {
		return nil, err
	}
	return out, nil
}

// extractObject returns the text between the first '{' and the last '}'.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// sanitizeSummary collapses whitespace in out["summary"] and trims it to the
// resume schema limit, cutting at a word boundary. It mutates out in place.
func sanitizeSummary(out map[string]interface{}) error {
	s, _ := out["summary"].(string)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return fmt.Errorf("ai-service returned an empty summary")
	}
	if r := []rune(s); len(r) > summaryMaxLen {
		truncated := string(r[:summaryMaxLen])
		if last := strings.LastIndexByte(truncated, ' '); last > 0 {
			truncated = truncated[:last]
		}
		s = truncated
	}
	out["summary"] = s
	return nil
}
