package handler

import (
	"strings"

	"radar/internal/model"
)

type EventForm struct {
	Headline   string `form:"headline"`
	WhyNow     string `form:"why_now"`
	Entities   string `form:"entities"`
	Sources    string `form:"sources"`
	Timeline   string `form:"timeline"`
	DedupGroup string `form:"dedup_group"`
	Hotness    string `form:"hotness"`
}

func (f EventForm) Event(manual bool) model.Event {
	ev := model.Event{
		Headline:   strings.TrimSpace(f.Headline),
		WhyNow:     strings.TrimSpace(f.WhyNow),
		Entities:   splitComma(f.Entities),
		Sources:    splitLines(f.Sources),
		Timeline:   splitLines(f.Timeline),
		DedupGroup: strings.TrimSpace(f.DedupGroup),
	}
	if manual {
		ev = ev.WithHotness(parseHotness(f.Hotness))
	}
	return ev
}

type EventRequest struct {
	Headline   string   `json:"headline"`
	WhyNow     string   `json:"why_now"`
	Entities   []string `json:"entities"`
	Sources    []string `json:"sources"`
	Timeline   []string `json:"timeline"`
	DedupGroup string   `json:"dedup_group"`
	Hotness    *float64 `json:"hotness"`
}

func (r EventRequest) Event() model.Event {
	return model.Event{
		Headline:   strings.TrimSpace(r.Headline),
		WhyNow:     strings.TrimSpace(r.WhyNow),
		Entities:   cleanList(r.Entities),
		Sources:    cleanList(r.Sources),
		Timeline:   cleanList(r.Timeline),
		DedupGroup: strings.TrimSpace(r.DedupGroup),
		Hotness:    r.Hotness,
	}
}

type HealthResponse struct {
	Status        string `json:"status"`
	HotnessMode   string `json:"hotness_mode"`
	FactsModel    string `json:"facts_model"`
	DraftModel    string `json:"draft_model"`
	PromptVersion string `json:"prompt_version"`
}
