package main

import (
	"log"
	"log/slog"
	"os"

	"radar/internal/config"
	"radar/internal/handler"
	"radar/internal/metrics"
	"radar/internal/pipeline"
	"radar/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	openAIClient, err := llm.NewOpenAIClient(cfg.LLM())
	if err != nil {
		log.Fatalf("error creating completion client: %v", err)
	}

	drafter, err := llm.NewDrafter(cfg.DraftProvider, openAIClient, cfg.Anthropic())
	if err != nil {
		log.Fatalf("error creating draft client: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	runner := pipeline.New(openAIClient, drafter, appMetrics)
	eventHandler := handler.NewEventHandler(runner, cfg.HotnessMode, appMetrics)
	healthHandler := handler.NewHealthHandler(cfg.HotnessMode, openAIClient.FactsModelName(), drafter.ModelName(), llm.PromptVersion)

	tmpl, err := handler.LoadTemplates()
	if err != nil {
		log.Fatalf("error loading templates: %v", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", eventHandler.ShowForm)
	r.POST("/events", eventHandler.SubmitForm)
	r.POST("/api/events", eventHandler.SubmitJSON)
	r.GET("/health", healthHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	slog.Info("starting server",
		"port", cfg.Port,
		"hotness_mode", cfg.HotnessMode,
		"facts_model", openAIClient.FactsModelName(),
		"draft_model", drafter.ModelName(),
	)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
