// Package hotness scores how urgent a candidate news event is.
//
// The score is a bounded sum of four capped contributions: corroborating
// sources, listed entities, recency of the latest timeline entry and the
// richness of the retrieved facts. It is deterministic for a given clock.
package hotness

import (
	"math"
	"time"
	"unicode/utf8"

	"radar/internal/model"
)

const (
	sourceWeight = 0.2
	sourceCap    = 0.3

	entityWeight = 0.1
	entityCap    = 0.3

	recencyWindowDays = 15
	recencyPerDay     = 0.02

	richFactsMinChars = 200
	richFactsBonus    = 0.1

	maxScore = 1.0
)

type Breakdown struct {
	Sources  float64 `json:"sources"`
	Entities float64 `json:"entities"`
	Recency  float64 `json:"recency"`
	Facts    float64 `json:"facts"`
	Total    float64 `json:"total"`

	ParsedDates    int        `json:"parsed_dates"`
	SkippedEntries int        `json:"skipped_entries"`
	MostRecent     *time.Time `json:"most_recent,omitempty"`
	DaysSince      *int       `json:"days_since,omitempty"`
}

// Score computes the hotness of ev. factsLen is the character count of the
// retrieved facts text, zero when retrieval did not run or failed.
func Score(ev model.Event, factsLen int, now time.Time) Breakdown {
	b := Breakdown{
		Sources:  SourceContribution(len(ev.Sources)),
		Entities: EntityContribution(len(ev.Entities)),
		Facts:    FactsContribution(factsLen),
	}

	latest, parsed, skipped := latestDate(ev.Timeline, now.Location())
	b.ParsedDates = parsed
	b.SkippedEntries = skipped
	if parsed > 0 {
		days := DaysSince(latest, now)
		b.MostRecent = &latest
		b.DaysSince = &days
		b.Recency = RecencyContribution(days)
	}

	sum := b.Sources + b.Entities + b.Recency + b.Facts
	b.Total = round2(clamp(sum, 0, maxScore))
	return b
}

func SourceContribution(n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Min(sourceWeight*math.Log1p(float64(n)), sourceCap)
}

func EntityContribution(n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Min(entityWeight*float64(n), entityCap)
}

// RecencyContribution decays linearly from 0.3 on the day of the event to
// zero after recencyWindowDays. Negative day counts are treated as today.
func RecencyContribution(days int) float64 {
	if days < 0 {
		days = 0
	}
	if days >= recencyWindowDays {
		return 0
	}
	return float64(recencyWindowDays-days) * recencyPerDay
}

func FactsContribution(factsLen int) float64 {
	if factsLen > richFactsMinChars {
		return richFactsBonus
	}
	return 0
}

// FactsLength counts characters, not bytes, so Cyrillic text is not
// over-counted. A nil pointer means retrieval produced nothing.
func FactsLength(facts *string) int {
	if facts == nil {
		return 0
	}
	return utf8.RuneCountInString(*facts)
}

// DaysSince returns whole days elapsed from date to now, floored and
// clamped at zero.
func DaysSince(date, now time.Time) int {
	d := now.Sub(date)
	if d <= 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

func latestDate(timeline []string, loc *time.Location) (latest time.Time, parsed, skipped int) {
	for _, entry := range timeline {
		t, ok := ParseTimelineDate(entry, loc)
		if !ok {
			skipped++
			continue
		}
		if parsed == 0 || t.After(latest) {
			latest = t
		}
		parsed++
	}
	return latest, parsed, skipped
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Normalize clamps an externally supplied score to [0,1] and rounds it the
// same way computed scores are rounded.
func Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return round2(clamp(v, 0, maxScore))
}
