package handler

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"radar/internal/metrics"
	"radar/internal/model"
	"radar/internal/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

//go:embed templates/*.html
var templateFS embed.FS

func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type Runner interface {
	Run(ctx context.Context, sub pipeline.Submission) pipeline.Result
}

type EventHandler struct {
	runner  Runner
	mode    string
	metrics *metrics.Metrics
}

func NewEventHandler(runner Runner, mode string, m *metrics.Metrics) *EventHandler {
	return &EventHandler{runner: runner, mode: mode, metrics: m}
}

func (h *EventHandler) manual() bool {
	return h.mode == model.HotnessManual
}

func (h *EventHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Manual":         h.manual(),
		"DefaultHotness": defaultManualHotness,
	})
}

func (h *EventHandler) SubmitForm(c *gin.Context) {
	var form EventForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		slog.Warn("invalid form submission", "error", err)
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	h.metrics.IncSubmission("form", h.mode)
	res := h.runner.Run(c.Request.Context(), pipeline.Submission{
		Event: form.Event(h.manual()),
		Mode:  h.mode,
	})

	c.HTML(http.StatusOK, "result.html", newResultView(res))
}

func (h *EventHandler) SubmitJSON(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid event request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.metrics.IncSubmission("api", h.mode)
	res := h.runner.Run(c.Request.Context(), pipeline.Submission{
		Event: req.Event(),
		Mode:  h.mode,
	})

	c.JSON(http.StatusOK, res)
}

type resultView struct {
	Result        pipeline.Result
	HasFacts      bool
	FactsText     string
	FactsError    string
	DraftError    string
	DraftJSON     string
	BreakdownJSON string
	EventJSON     string
}

func newResultView(res pipeline.Result) resultView {
	v := resultView{
		Result:        res,
		DraftJSON:     prettyJSON(res.Draft),
		BreakdownJSON: prettyJSON(res.Breakdown),
		EventJSON:     prettyJSON(res.Event),
	}
	if res.Facts != nil {
		v.HasFacts = true
		v.FactsText = *res.Facts
	}

	for _, e := range res.Errors {
		switch e.Stage {
		case pipeline.StageFacts:
			v.FactsError = e.Message
		case pipeline.StageDraft:
			v.DraftError = e.Message
		}
	}
	return v
}

func prettyJSON(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("error encoding result section", "error", err)
		return ""
	}
	return buf.String()
}
