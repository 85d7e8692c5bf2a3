package tui

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ozerovd/go-sale-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: выход")

	return appStyle.Render(b.String())
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// money renders a decimal with two fraction digits, the way a receipt would.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// shortRef keeps only the first UUID group; enough to tell sales apart on a
// narrow till display.
func shortRef(tempID string) string {
	if i := strings.IndexByte(tempID, '-'); i > 0 {
		return tempID[:i]
	}
	return fitText(tempID, 8)
}

func statusLabel(s models.SyncStatus) string {
	switch s {
	case models.SyncStatusPending:
		return "ожидает"
	case models.SyncStatusSyncing:
		return "отправка"
	case models.SyncStatusSynced:
		return "готово"
	case models.SyncStatusFailed:
		return "ОШИБКА"
	default:
		return string(s)
	}
}
