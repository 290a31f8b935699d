package adapter

import (
	"strings"

	"github.com/harrison/rinkadapter/internal/models"
	"github.com/harrison/rinkadapter/internal/tool"
)

// SplitLines splits tool stdout on sep. A single trailing separator is
// dropped first so "a\nb\n" yields ["a", "b"].
func SplitLines(stdout, sep string) []string {
	if stdout == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(stdout, sep), sep)
}

// Classify maps one tool run onto an outcome. The returned lines are only
// meaningful for OutcomeSuccess.
//
// Order matters: stderr wins over everything, then the two-line shape,
// then the unit marker, then the parse marker.
func Classify(out *tool.Output, sep string) (models.OutcomeCategory, []string) {
	if out == nil || out.Stderr != "" {
		return models.OutcomeToolError, nil
	}

	lines := SplitLines(out.Stdout, sep)
	if len(lines) < 2 {
		return models.OutcomeToolError, nil
	}

	result := lines[1]
	switch {
	case strings.Contains(result, models.MarkerUnitNotFound):
		return models.OutcomeUnitNotFound, nil
	case strings.Contains(result, models.MarkerParseError):
		return models.OutcomeParseError, nil
	case strings.TrimSpace(result) == "":
		return models.OutcomeToolError, nil
	}

	return models.OutcomeSuccess, lines
}
