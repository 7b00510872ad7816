package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mirror-sync/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(data, footer, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mirror-sync"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(data, "\n"))
	b.WriteString("\n\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(footer) != "" {
		b.WriteString(helpStyle.Render(footer))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(hotKeys))

	return b.String()
}

func buildLine(info models.AppBuildInfo) string {
	return fmt.Sprintf("version %s  commit %s  built %s",
		valueOrNA(info.BuildVersion()), valueOrNA(info.BuildCommit()), valueOrNA(info.BuildDate()))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
