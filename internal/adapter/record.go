package adapter

import (
	"fmt"
	"strings"

	"github.com/harrison/rinkadapter/internal/config"
	"github.com/harrison/rinkadapter/internal/models"
)

// BuildRecord shapes a successful result for the configured profile.
// lines must hold at least two entries (see Classify).
func BuildRecord(cfg *config.Config, query string, lines []string) models.ResultRecord {
	label := lines[1]

	if cfg.Profile == config.ProfileSearchablePassthrough {
		return models.ResultRecord{
			Label:      label,
			Sub:        lines[0],
			Searchable: query,
			Class:      cfg.Class,
		}
	}

	return models.ResultRecord{
		Label:    label,
		Sub:      cfg.SubTag,
		Exec:     ClipboardExec(label, cfg.ClipboardCommand),
		Class:    cfg.Class,
		Matching: models.MatchingAlwaysTop,
	}
}

// ClipboardExec returns the shell command that copies label to the clipboard.
// The label is single-quoted, so it is never interpreted by the shell.
func ClipboardExec(label, clipboardCmd string) string {
	return fmt.Sprintf("echo %s | %s", shellQuote(label), clipboardCmd)
}

// shellQuote wraps s in POSIX single quotes. Embedded quotes become '\''.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
