package handler

import (
	"strconv"
	"strings"

	"radar/internal/hotness"
)

const defaultManualHotness = 0.5

func splitComma(s string) []string {
	return cleanList(strings.Split(s, ","))
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return cleanList(strings.Split(s, "\n"))
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseHotness(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return defaultManualHotness
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultManualHotness
	}
	return hotness.Normalize(v)
}
