package tui

import (
	"fmt"
	"strings"

	"github.com/ozerovd/go-sale-keeper/models"
)

// salesModel renders the journal of locally recorded sales with their sync
// state. The list is the terminal's home screen.
type salesModel struct {
	sales   []models.PendingSale
	idx     int
	loading bool
}

func newSalesModel() salesModel {
	return salesModel{loading: true}
}

func (m *salesModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *salesModel) moveDown() {
	if m.idx < len(m.sales)-1 {
		m.idx++
	}
}

func (m salesModel) selected() (models.PendingSale, bool) {
	if m.idx < 0 || m.idx >= len(m.sales) {
		return models.PendingSale{}, false
	}
	return m.sales[m.idx], true
}

func (m salesModel) view() string {
	if m.loading {
		return "Загрузка продаж..."
	}
	if len(m.sales) == 0 {
		return "Продаж пока нет. n — новая продажа."
	}

	var pending, failed int
	for _, sale := range m.sales {
		switch sale.SyncStatus {
		case models.SyncStatusPending, models.SyncStatusSyncing:
			pending++
		case models.SyncStatusFailed:
			failed++
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Ожидают отправки: %d │ С ошибкой: %d\n\n", pending, failed))
	b.WriteString(fmt.Sprintf("  %-10s │ %10s │ %10s │ %-9s │ %s\n", "Чек", "Сумма", "Оплачено", "Статус", "Сервер"))
	b.WriteString("  ───────────┼────────────┼────────────┼───────────┼────────\n")

	for i, sale := range m.sales {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		serverID := "-"
		if sale.ServerID != nil {
			serverID = fmt.Sprintf("#%d", *sale.ServerID)
		}

		b.WriteString(fmt.Sprintf("%s%-10s │ %10s │ %10s │ %-9s │ %s\n",
			cursor,
			shortRef(sale.TempID),
			money(sale.TotalAmount),
			money(sale.PaidAmount),
			statusLabel(sale.SyncStatus),
			serverID,
		))

		if sale.SyncStatus == models.SyncStatusFailed && sale.LastError != "" && i == m.idx {
			b.WriteString("  └ ")
			b.WriteString(fitText(sale.LastError, 60))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
