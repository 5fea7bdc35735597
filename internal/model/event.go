package model

const (
	HotnessComputed = "computed"
	HotnessManual   = "manual"
)

type Event struct {
	Headline   string   `json:"headline" yaml:"headline"`
	WhyNow     string   `json:"why_now" yaml:"why_now"`
	Entities   []string `json:"entities" yaml:"entities"`
	Sources    []string `json:"sources" yaml:"sources"`
	Timeline   []string `json:"timeline" yaml:"timeline"`
	DedupGroup string   `json:"dedup_group" yaml:"dedup_group"`
	Hotness    *float64 `json:"hotness,omitempty" yaml:"hotness,omitempty"`
	Facts      *string  `json:"facts,omitempty" yaml:"-"`
}

// Normalized returns a copy whose list fields are non-nil so they encode as [].
func (e Event) Normalized() Event {
	e.Entities = nonNil(e.Entities)
	e.Sources = nonNil(e.Sources)
	e.Timeline = nonNil(e.Timeline)
	return e
}

func (e Event) WithFacts(facts string) Event {
	e.Facts = &facts
	return e
}

func (e Event) WithHotness(v float64) Event {
	e.Hotness = &v
	return e
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
