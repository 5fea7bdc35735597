package main

import (
	"fmt"
	"os"

	"radar/internal/model"

	"gopkg.in/yaml.v3"
)

func loadEvent(path string) (model.Event, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Event{}, fmt.Errorf("read event file: %w", err)
	}

	var ev model.Event
	if err := yaml.Unmarshal(b, &ev); err != nil {
		return model.Event{}, fmt.Errorf("parse event file %s: %w", path, err)
	}
	return ev.Normalized(), nil
}

func sampleEvent() model.Event {
	return model.Event{
		Headline: "Центробанк впервые оценил потенциальный вклад НДС в инфляцию",
		WhyNow:   "Центробанк впервые оценил потенциальный вклад НДС в инфляцию",
		Entities: []string{"Центробанк"},
		Sources:  []string{"https://www.rbc.ru"},
		Timeline: []string{
			"30 октября 2025 — пресс-релиз о публикации",
			"30 октября 2025 — анонс на официальном сайте",
		},
		DedupGroup: "cb_tax_inflation_20251030",
	}.WithHotness(0.88)
}
