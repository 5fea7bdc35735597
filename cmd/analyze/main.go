package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"radar/internal/config"
	"radar/internal/hotness"
	"radar/internal/model"
	"radar/internal/pipeline"
	"radar/pkg/llm"
)

var (
	eventFile   string
	hotnessMode string
	skipFacts   bool
	factsLen    int
	verbose     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the RADAR event pipeline from the command line",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Retrieve facts, generate a draft and score one event",
	Long: `Run the full pipeline once and print the result as JSON.

The event is read from a YAML file with the keys headline, why_now, entities,
sources, timeline, dedup_group and (for manual mode) hotness. Without --event
the built-in central bank sample is used.

Examples:
  analyze run --event event.yaml
  analyze run --hotness-mode manual
  analyze run --event event.yaml --skip-facts`,
	RunE: runPipeline,
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one event without calling any completion API",
	RunE:  runScore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&eventFile, "event", "", "YAML file with the event record")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	runCmd.Flags().StringVar(&hotnessMode, "hotness-mode", "", "computed or manual (default from HOTNESS_MODE)")
	runCmd.Flags().BoolVar(&skipFacts, "skip-facts", false, "do not call the research endpoint")

	scoreCmd.Flags().IntVar(&factsLen, "facts-len", 0, "length in characters of the retrieved facts text")

	rootCmd.AddCommand(runCmd, scoreCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	mode := cfg.HotnessMode
	if hotnessMode != "" {
		mode = hotnessMode
	}
	if mode != model.HotnessComputed && mode != model.HotnessManual {
		return fmt.Errorf("invalid --hotness-mode %q", mode)
	}

	ev, err := readEvent(eventFile)
	if err != nil {
		return err
	}

	openAIClient, err := llm.NewOpenAIClient(cfg.LLM())
	if err != nil {
		return err
	}
	drafter, err := llm.NewDrafter(cfg.DraftProvider, openAIClient, cfg.Anthropic())
	if err != nil {
		return err
	}

	res := pipeline.New(openAIClient, drafter, nil).Run(cmd.Context(), pipeline.Submission{
		Event:     ev,
		Mode:      mode,
		SkipFacts: skipFacts,
	})

	return printJSON(res)
}

func runScore(cmd *cobra.Command, args []string) error {
	ev, err := readEvent(eventFile)
	if err != nil {
		return err
	}

	return printJSON(hotness.Score(ev.Normalized(), factsLen, time.Now()))
}

func readEvent(path string) (model.Event, error) {
	if path == "" {
		return sampleEvent(), nil
	}
	return loadEvent(path)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
