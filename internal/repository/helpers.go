package repository

import (
	"strconv"
	"strings"
)

// parseFloat returns nil for blank or unparseable values.
func parseFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// floatOrZero parses a float field, degrading to 0 on failure.
func floatOrZero(raw string) float64 {
	if v := parseFloat(raw); v != nil {
		return *v
	}
	return 0
}

// splitList splits a separated-values field, trimming whitespace and
// dropping empties.
func splitList(raw, sep string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// normalizeEndDate treats blank and "Present" as absent.
func normalizeEndDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "Present") {
		return ""
	}
	return trimmed
}
