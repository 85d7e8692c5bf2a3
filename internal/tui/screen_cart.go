// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"

	"github.com/ozerovd/go-sale-keeper/models"
)

// cartModel composes a new sale from the cached catalog. Products are picked
// with +/-, the optional cash amount goes into the payment input; everything
// works without the network because the catalog is served from the local
// cache.
type cartModel struct {
	products []models.Product
	idx      int
	loading  bool

	// quantities keyed by product id; the order of display follows products
	quantities map[int64]int64

	payInput   textinput.Model
	payFocused bool
}

func newCartModel() cartModel {
	payInput := textinput.New()
	payInput.Placeholder = "0.00"
	payInput.CharLimit = 12
	payInput.Width = 12

	return cartModel{
		quantities: make(map[int64]int64),
		payInput:   payInput,
		loading:    true,
	}
}

func (m *cartModel) reset(products []models.Product) {
	m.products = products
	m.idx = 0
	m.loading = false
	m.quantities = make(map[int64]int64)
	m.payInput.SetValue("")
	m.payFocused = false
	m.payInput.Blur()
}

func (m *cartModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *cartModel) moveDown() {
	if m.idx < len(m.products)-1 {
		m.idx++
	}
}

func (m *cartModel) addOne() {
	if m.idx < 0 || m.idx >= len(m.products) {
		return
	}
	p := m.products[m.idx]
	if m.quantities[p.ID] < p.StockQuantity {
		m.quantities[p.ID]++
	}
}

func (m *cartModel) removeOne() {
	if m.idx < 0 || m.idx >= len(m.products) {
		return
	}
	p := m.products[m.idx]
	if m.quantities[p.ID] > 0 {
		m.quantities[p.ID]--
		if m.quantities[p.ID] == 0 {
			delete(m.quantities, p.ID)
		}
	}
}

func (m *cartModel) togglePayFocus() {
	m.payFocused = !m.payFocused
	if m.payFocused {
		m.payInput.Focus()
	} else {
		m.payInput.Blur()
	}
}

// total returns the running cart total.
func (m cartModel) total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range m.products {
		if qty := m.quantities[p.ID]; qty > 0 {
			total = total.Add(p.Price.Mul(decimal.NewFromInt(qty)))
		}
	}
	return total
}

// items materializes the cart lines with prices frozen from the cache.
func (m cartModel) items() []models.SaleItem {
	var items []models.SaleItem
	for _, p := range m.products {
		qty := m.quantities[p.ID]
		if qty == 0 {
			continue
		}
		items = append(items, models.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    qty,
			UnitPrice:   p.Price,
		})
	}
	return items
}

// payments parses the payment input into at most one cash payment.
func (m cartModel) payments() ([]models.PaymentRecord, error) {
	raw := strings.TrimSpace(m.payInput.Value())
	if raw == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("некорректная сумма: %q", raw)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}

	return []models.PaymentRecord{{Method: "cash", Amount: amount}}, nil
}

func (m cartModel) view() string {
	if m.loading {
		return "Загрузка каталога..."
	}
	if len(m.products) == 0 {
		return "Каталог пуст. r — обновить кэш с сервера."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-26s │ %10s │ %8s │ %s\n", "Товар", "Цена", "Остаток", "В чеке"))
	b.WriteString("  ───────────────────────────┼────────────┼──────────┼───────\n")

	for i, p := range m.products {
		cursor := "  "
		if i == m.idx && !m.payFocused {
			cursor = "> "
		}

		qty := ""
		if q := m.quantities[p.ID]; q > 0 {
			qty = fmt.Sprintf("x%d", q)
		}

		b.WriteString(fmt.Sprintf("%s%-26s │ %10s │ %8d │ %s\n",
			cursor, fitText(p.Name, 26), money(p.Price), p.StockQuantity, qty))
	}

	b.WriteString("\n")
	b.WriteString("Итого: ")
	b.WriteString(money(m.total()))
	b.WriteString("\n")

	marker := " "
	if m.payFocused {
		marker = ">"
	}
	b.WriteString(marker)
	b.WriteString("Оплата наличными: [")
	b.WriteString(m.payInput.View())
	b.WriteString("]")

	return strings.TrimRight(b.String(), "\n")
}
