package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"radar/internal/model"
)

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// ParseDraft decodes a model answer into a Draft. Anything that is not a
// draft object becomes a failed Draft carrying the untouched answer.
func ParseDraft(content string) model.Draft {
	d, err := model.ParseDraftBody([]byte(cleanJSONResponse(content)))
	if err != nil {
		return model.FailedDraft(content)
	}
	return d
}

type draftContext struct {
	model.Event
	Facts *string `json:"facts"`
}

// buildDraftContext serializes the event with a facts field that is null
// when retrieval produced nothing. Non-ASCII text is kept as is.
func buildDraftContext(event model.Event, facts *string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(draftContext{Event: event.Normalized(), Facts: facts}); err != nil {
		return "", fmt.Errorf("encode draft context: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
