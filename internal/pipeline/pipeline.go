// Package pipeline runs one event submission through fact retrieval, draft
// generation and hotness scoring.
//
// Stages are isolated: a failing stage is recorded on the Result and the
// following stages still run with whatever the earlier ones produced.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"radar/internal/hotness"
	"radar/internal/metrics"
	"radar/internal/model"
	"radar/pkg/llm"

	"github.com/google/uuid"
)

const (
	StageFacts = "facts"
	StageDraft = "draft"
	StageScore = "score"

	statusSuccess     = "success"
	statusError       = "error"
	statusSkipped     = "skipped"
	statusParseFailed = "parse_failed"
)

type Submission struct {
	Event     model.Event
	Mode      string
	SkipFacts bool
}

type StageError struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

type Result struct {
	SubmissionID  string            `json:"submission_id"`
	Facts         *string           `json:"facts"`
	Draft         *model.Draft      `json:"draft"`
	DraftModel    string            `json:"draft_model,omitempty"`
	PromptVersion string            `json:"prompt_version"`
	Hotness       float64           `json:"hotness"`
	HotnessSource string            `json:"hotness_source"`
	Breakdown     hotness.Breakdown `json:"hotness_breakdown"`
	Event         model.Event       `json:"event"`
	Errors        []StageError      `json:"errors"`
}

func (r Result) StageFailed(stage string) bool {
	for _, e := range r.Errors {
		if e.Stage == stage {
			return true
		}
	}
	return false
}

type Pipeline struct {
	facts   llm.FactRetriever
	drafter llm.Drafter
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(facts llm.FactRetriever, drafter llm.Drafter, m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		facts:   facts,
		drafter: drafter,
		metrics: m,
		now:     time.Now,
	}
}

// WithClock replaces the evaluation time used for recency scoring.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

func (p *Pipeline) Run(ctx context.Context, sub Submission) Result {
	ev := sub.Event.Normalized()
	ev.Facts = nil

	manual := sub.Mode == model.HotnessManual && ev.Hotness != nil
	if manual {
		ev = ev.WithHotness(hotness.Normalize(*ev.Hotness))
	} else {
		ev.Hotness = nil
	}

	res := Result{
		SubmissionID:  uuid.New().String(),
		PromptVersion: llm.PromptVersion,
		Errors:        []StageError{},
	}
	logger := slog.With("submission_id", res.SubmissionID)
	logger.Info("submission received", "headline", ev.Headline, "mode", sub.Mode, "dedup_group", ev.DedupGroup)

	res.Facts = p.fetchFacts(ctx, logger, ev.Headline, sub.SkipFacts, &res)
	res.Draft = p.generateDraft(ctx, logger, ev, res.Facts, &res)

	start := time.Now()
	res.Breakdown = hotness.Score(ev, hotness.FactsLength(res.Facts), p.now())
	p.metrics.ObserveStage(StageScore, statusSuccess, time.Since(start))
	p.metrics.ObserveHotness(res.Breakdown.Total)
	if res.Breakdown.SkippedEntries > 0 {
		logger.Debug("timeline entries skipped", "skipped", res.Breakdown.SkippedEntries, "parsed", res.Breakdown.ParsedDates)
	}

	if manual {
		res.Hotness = *ev.Hotness
		res.HotnessSource = model.HotnessManual
	} else {
		res.Hotness = res.Breakdown.Total
		res.HotnessSource = model.HotnessComputed
		ev = ev.WithHotness(res.Hotness)
	}

	if res.Facts != nil {
		ev = ev.WithFacts(*res.Facts)
	}
	res.Event = ev

	logger.Info("submission complete",
		"hotness", res.Hotness,
		"hotness_source", res.HotnessSource,
		"stage_errors", len(res.Errors),
	)
	return res
}

func (p *Pipeline) fetchFacts(ctx context.Context, logger *slog.Logger, headline string, skip bool, res *Result) *string {
	if skip || p.facts == nil {
		p.metrics.ObserveStage(StageFacts, statusSkipped, 0)
		return nil
	}

	start := time.Now()
	facts, err := p.facts.FetchFacts(ctx, headline)
	elapsed := time.Since(start)
	if err != nil {
		p.metrics.ObserveStage(StageFacts, statusError, elapsed)
		logger.Error("error fetching facts", "error", err, "elapsed", elapsed)
		res.Errors = append(res.Errors, StageError{Stage: StageFacts, Message: err.Error()})
		return nil
	}

	p.metrics.ObserveStage(StageFacts, statusSuccess, elapsed)
	logger.Info("facts retrieved", "chars", hotness.FactsLength(&facts), "elapsed", elapsed)
	return &facts
}

func (p *Pipeline) generateDraft(ctx context.Context, logger *slog.Logger, ev model.Event, facts *string, res *Result) *model.Draft {
	if p.drafter == nil {
		p.metrics.ObserveStage(StageDraft, statusSkipped, 0)
		return nil
	}
	res.DraftModel = p.drafter.ModelName()

	start := time.Now()
	draft, err := p.drafter.GenerateDraft(ctx, ev, facts)
	elapsed := time.Since(start)
	if err != nil {
		p.metrics.ObserveStage(StageDraft, statusError, elapsed)
		logger.Error("error generating draft", "error", err, "elapsed", elapsed)
		res.Errors = append(res.Errors, StageError{Stage: StageDraft, Message: err.Error()})
		return nil
	}

	if draft.Failed() {
		p.metrics.ObserveStage(StageDraft, statusParseFailed, elapsed)
		logger.Warn("draft response was not valid JSON, keeping raw text", "elapsed", elapsed, "raw_chars", len(draft.Raw))
		return &draft
	}

	p.metrics.ObserveStage(StageDraft, statusSuccess, elapsed)
	logger.Info("draft generated", "elapsed", elapsed, "bullets", len(draft.Bullets))
	return &draft
}
