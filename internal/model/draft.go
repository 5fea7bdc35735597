package model

import (
	"encoding/json"
	"errors"
	"strings"
)

const DraftParseFailed = "parse failed"

var errNotDraft = errors.New("draft: object has none of headline, lead, bullets, citation")

// Draft is either a post skeleton or, when the model answer could not be
// decoded, an error record carrying the raw answer. It never encodes both.
type Draft struct {
	Headline string
	Lead     string
	Bullets  []string
	Citation string

	Error string
	Raw   string
}

func FailedDraft(raw string) Draft {
	return Draft{Error: DraftParseFailed, Raw: raw}
}

func (d Draft) Failed() bool {
	return d.Error != ""
}

type draftBody struct {
	Headline string   `json:"headline"`
	Lead     string   `json:"lead"`
	Bullets  []string `json:"bullets"`
	Citation string   `json:"citation"`
}

type draftFailure struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}

func (d Draft) MarshalJSON() ([]byte, error) {
	if d.Failed() {
		return json.Marshal(draftFailure{Error: d.Error, Raw: d.Raw})
	}
	bullets := d.Bullets
	if bullets == nil {
		bullets = []string{}
	}
	return json.Marshal(draftBody{
		Headline: d.Headline,
		Lead:     d.Lead,
		Bullets:  bullets,
		Citation: d.Citation,
	})
}

func (d *Draft) UnmarshalJSON(data []byte) error {
	var probe struct {
		Error *string `json:"error"`
		Raw   string  `json:"raw"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Error != nil {
		*d = Draft{Error: *probe.Error, Raw: probe.Raw}
		return nil
	}

	parsed, err := ParseDraftBody(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDraftBody decodes a headline/lead/bullets/citation object. Bullets and
// citation may each be a single string or a list of strings.
func ParseDraftBody(data []byte) (Draft, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Draft{}, err
	}
	if fields == nil || !hasAny(fields, "headline", "lead", "bullets", "citation") {
		return Draft{}, errNotDraft
	}

	var body struct {
		Headline string   `json:"headline"`
		Lead     string   `json:"lead"`
		Bullets  textList `json:"bullets"`
		Citation textList `json:"citation"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return Draft{}, err
	}

	return Draft{
		Headline: body.Headline,
		Lead:     body.Lead,
		Bullets:  []string(body.Bullets),
		Citation: strings.Join(body.Citation, "; "),
	}, nil
}

func hasAny(fields map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	return false
}

// textList accepts either a JSON string or an array of strings.
type textList []string

func (t *textList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*t = nil
		} else {
			*t = textList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = many
	return nil
}
