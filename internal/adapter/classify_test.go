package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/rinkadapter/internal/models"
	"github.com/harrison/rinkadapter/internal/tool"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		sep    string
		want   []string
	}{
		{"two lines with trailing newline", "meters\n5.2 feet\n", "\n", []string{"meters", "5.2 feet"}},
		{"two lines without trailing newline", "meters\n5.2 feet", "\n", []string{"meters", "5.2 feet"}},
		{"crlf", "a\r\nb\r\n", "\r\n", []string{"a", "b"}},
		{"crlf output split on lf keeps carriage returns", "a\r\nb\r\n", "\n", []string{"a\r", "b\r"}},
		{"only one trailing separator is dropped", "a\nb\n\n", "\n", []string{"a", "b", ""}},
		{"empty", "", "\n", nil},
		{"lone separator", "\n", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.stdout, tt.sep))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		out       *tool.Output
		want      models.OutcomeCategory
		wantLines []string
	}{
		{
			name:      "success",
			out:       &tool.Output{Stdout: "meters\n5.2 feet\n"},
			want:      models.OutcomeSuccess,
			wantLines: []string{"meters", "5.2 feet"},
		},
		{
			name:      "extra lines are kept",
			out:       &tool.Output{Stdout: "> 1 mile\n1.609344 kilometer (length)\nextra\n"},
			want:      models.OutcomeSuccess,
			wantLines: []string{"> 1 mile", "1.609344 kilometer (length)", "extra"},
		},
		{
			name: "stderr beats everything",
			out:  &tool.Output{Stdout: "meters\n5.2 feet\n", Stderr: "x"},
			want: models.OutcomeToolError,
		},
		{
			name: "nil output",
			out:  nil,
			want: models.OutcomeToolError,
		},
		{
			name: "fewer than two lines",
			out:  &tool.Output{Stdout: "meters\n"},
			want: models.OutcomeToolError,
		},
		{
			name: "unit marker",
			out:  &tool.Output{Stdout: "> foo\nNo such unit foo\n"},
			want: models.OutcomeUnitNotFound,
		},
		{
			name: "parse marker",
			out:  &tool.Output{Stdout: "> 1 +\nExpected term\n"},
			want: models.OutcomeParseError,
		},
		{
			name: "both markers favour unit not found",
			out:  &tool.Output{Stdout: "x\nNo such unit, Expected unit\n"},
			want: models.OutcomeUnitNotFound,
		},
		{
			name:      "marker on first line is ignored",
			out:       &tool.Output{Stdout: "No such unit\n42\n"},
			want:      models.OutcomeSuccess,
			wantLines: []string{"No such unit", "42"},
		},
		{
			name:      "marker match is case sensitive",
			out:       &tool.Output{Stdout: "x\nexpected value\n"},
			want:      models.OutcomeSuccess,
			wantLines: []string{"x", "expected value"},
		},
		{
			name: "empty result line",
			out:  &tool.Output{Stdout: "meters\n\n"},
			want: models.OutcomeToolError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, lines := Classify(tt.out, "\n")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLines, lines)
		})
	}
}
