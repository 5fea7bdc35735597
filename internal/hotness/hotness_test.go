package hotness

import (
	"math"
	"strings"
	"testing"
	"time"

	"radar/internal/model"

	"github.com/go-playground/assert/v2"
)

var testNow = time.Date(2025, time.November, 4, 15, 30, 0, 0, time.UTC)

func TestSourceContribution(t *testing.T) {
	assert.Equal(t, 0.0, SourceContribution(0))
	assert.Equal(t, 0.2*math.Log1p(1), SourceContribution(1))
	assert.Equal(t, 0.3, SourceContribution(10))

	prev := 0.0
	for n := 0; n <= 50; n++ {
		got := SourceContribution(n)
		if got < prev {
			t.Fatalf("source contribution decreased at n=%d: %v < %v", n, got, prev)
		}
		if got > 0.3 {
			t.Fatalf("source contribution above cap at n=%d: %v", n, got)
		}
		prev = got
	}
}

func TestEntityContribution(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 0},
		{1, 0.1},
		{2, 0.2},
		{3, 0.3},
		{4, 0.3},
		{25, 0.3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EntityContribution(tt.n))
		assert.Equal(t, math.Min(0.1*float64(tt.n), 0.3), EntityContribution(tt.n))
	}
}

func TestRecencyContribution(t *testing.T) {
	assert.Equal(t, 0.3, RecencyContribution(0))
	assert.Equal(t, 0.0, RecencyContribution(15))
	assert.Equal(t, 0.0, RecencyContribution(30))
	assert.Equal(t, 0.3, RecencyContribution(-3))

	if got := RecencyContribution(5); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("got %v, want 0.2", got)
	}
	if got := RecencyContribution(14); got <= 0 {
		t.Errorf("day 14 should still contribute, got %v", got)
	}
}

func TestFactsContribution(t *testing.T) {
	assert.Equal(t, 0.0, FactsContribution(0))
	assert.Equal(t, 0.0, FactsContribution(200))
	assert.Equal(t, 0.1, FactsContribution(201))

	assert.Equal(t, 0, FactsLength(nil))
	empty := ""
	assert.Equal(t, 0, FactsLength(&empty))

	cyrillic := strings.Repeat("ф", 150)
	assert.Equal(t, 150, FactsLength(&cyrillic))
	assert.Equal(t, 0.0, FactsContribution(FactsLength(&cyrillic)))
}

func TestDaysSince(t *testing.T) {
	day := time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysSince(day, testNow))
	assert.Equal(t, 1, DaysSince(day.AddDate(0, 0, -1), testNow))
	assert.Equal(t, 15, DaysSince(day.AddDate(0, 0, -15), testNow))
	assert.Equal(t, 0, DaysSince(day.AddDate(0, 0, 3), testNow))
}

func TestScore_Empty(t *testing.T) {
	b := Score(model.Event{}, 0, testNow)

	assert.Equal(t, 0.0, b.Total)
	assert.Equal(t, 0, b.ParsedDates)
	assert.Equal(t, 0, b.SkippedEntries)
	assert.Equal(t, true, b.MostRecent == nil)
}

func TestScore_CentralBankExample(t *testing.T) {
	ev := model.Event{
		Headline: "Центробанк впервые оценил потенциальный вклад НДС в инфляцию",
		Entities: []string{"Центробанк"},
		Sources:  []string{"https://www.rbc.ru"},
		Timeline: []string{"30 октября 2025 — пресс-релиз"},
	}

	b := Score(ev, 250, testNow)

	assert.Equal(t, 0.2*math.Log1p(1), b.Sources)
	assert.Equal(t, 0.1, b.Entities)
	assert.Equal(t, 0.1, b.Facts)
	assert.Equal(t, 1, b.ParsedDates)
	assert.Equal(t, 5, *b.DaysSince)
	// 0.139 + 0.1 + 0.2 + 0.1
	assert.Equal(t, 0.54, b.Total)
}

func TestScore_SkipsMalformedTimeline(t *testing.T) {
	ev := model.Event{
		Timeline: []string{
			"вчера — слухи",
			"32 октября 2025 — опечатка",
			"3 November 2025 — confirmation",
			"",
			"1 ноября 2025",
		},
	}

	b := Score(ev, 0, testNow)

	assert.Equal(t, 2, b.ParsedDates)
	assert.Equal(t, 3, b.SkippedEntries)
	assert.Equal(t, time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), *b.MostRecent)
	assert.Equal(t, 0.28, b.Total)
}

func TestScore_FutureDateCapsAtFullRecency(t *testing.T) {
	ev := model.Event{Timeline: []string{"20 November 2025 — scheduled decision"}}

	b := Score(ev, 0, testNow)

	assert.Equal(t, 0.3, b.Recency)
	assert.Equal(t, 0, *b.DaysSince)
}

func TestScore_BoundedAndRounded(t *testing.T) {
	sources := make([]string, 40)
	entities := make([]string, 40)
	ev := model.Event{
		Sources:  sources,
		Entities: entities,
		Timeline: []string{"4 November 2025 — today"},
	}

	b := Score(ev, 10_000, testNow)
	assert.Equal(t, 1.0, b.Total)

	for n := 0; n < 6; n++ {
		for m := 0; m < 6; m++ {
			for days := 0; days < 20; days += 3 {
				ev := model.Event{
					Sources:  make([]string, n),
					Entities: make([]string, m),
					Timeline: []string{testNow.AddDate(0, 0, -days).Format("2 January 2006")},
				}
				got := Score(ev, 150*days, testNow).Total
				if got < 0 || got > 1 {
					t.Fatalf("score out of range: %v", got)
				}
				if got != math.Round(got*100)/100 {
					t.Fatalf("score not rounded to 2 places: %v", got)
				}
			}
		}
	}
}
