// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ozerovd/go-sale-keeper/internal/localstore"
	"github.com/ozerovd/go-sale-keeper/internal/pos"
	"github.com/ozerovd/go-sale-keeper/models"
)

type screen int

const (
	screenSales screen = iota
	screenCart
	screenPay
)

// mainModel is the till's working loop: the sales journal, the cart for a new
// sale, and the extra-payment form. Background sync results arrive as
// messages through the program's notifier and repaint the journal.
type mainModel struct {
	ctx      context.Context
	services *pos.Services
	cache    localstore.Cache

	currentScreen screen
	sales         salesModel
	cart          cartModel
	pay           payModel

	status    string
	showError bool
	overlay   errorOverlayModel

	// cache reset is destructive for the catalog caches, so it asks first
	showConfirm bool
	confirm     confirmModel
}

func newMainModel(ctx context.Context, services *pos.Services, cache localstore.Cache) mainModel {
	return mainModel{
		ctx:      ctx,
		services: services,
		cache:    cache,
		sales:    newSalesModel(),
		cart:     newCartModel(),
		pay:      newPayModel(),
	}
}

func (m mainModel) Init() tea.Cmd {
	return m.cmdLoadSales()
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.overlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				m.status = "Обновление кэша..."
				return m, m.cmdRefreshCaches()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
		return m.updateKey(msg)

	case salesLoadedMsg:
		m.sales.loading = false
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.sales.sales = msg.sales
		if m.sales.idx >= len(msg.sales) {
			m.sales.idx = 0
		}
		return m, nil

	case productsLoadedMsg:
		if msg.err != nil {
			m.currentScreen = screenSales
			return m.withError(msg.err), nil
		}
		m.cart.reset(msg.products)
		return m, nil

	case saleRecordedMsg:
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.currentScreen = screenSales
		m.status = "Чек " + shortRef(msg.sale.TempID) + " записан, сумма " + money(msg.sale.TotalAmount)
		return m, tea.Batch(m.cmdLoadSales(), m.cmdClearStatusLater())

	case paymentDoneMsg:
		if msg.err != nil {
			m.pay.errMsg = msg.err.Error()
			return m, nil
		}
		m.currentScreen = screenSales
		m.status = "Оплата записана, чек " + shortRef(msg.sale.TempID)
		return m, tea.Batch(m.cmdLoadSales(), m.cmdClearStatusLater())

	case syncDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, pos.ErrSyncInProgress) {
				m.status = "Синхронизация уже выполняется"
				return m, m.cmdClearStatusLater()
			}
			m.status = "Синхронизация: " + humanizeServerUnavailableError(msg.err)
			return m, tea.Batch(m.cmdLoadSales(), m.cmdClearStatusLater())
		}
		m.status = fmt.Sprintf("Синхронизация: отправлено %d, в очереди %d", msg.report.Submitted, msg.report.Remaining)
		if msg.report.Failed {
			m.status += " — есть ошибка, см. журнал"
		}
		return m, tea.Batch(m.cmdLoadSales(), m.cmdClearStatusLater())

	case cacheRefreshedMsg:
		if msg.err != nil {
			m.status = "Обновление кэша: " + humanizeServerUnavailableError(msg.err)
			return m, m.cmdClearStatusLater()
		}
		m.status = fmt.Sprintf("Кэш обновлён: товаров %d, покупателей %d", msg.stats.Products, msg.stats.Clients)
		if m.currentScreen == screenCart {
			return m, tea.Batch(m.cmdLoadProducts(), m.cmdClearStatusLater())
		}
		return m, m.cmdClearStatusLater()

	case copiedMsg:
		m.status = "Номер чека скопирован в буфер обмена"
		return m, m.cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m mainModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentScreen {
	case screenSales:
		return m.updateSalesKey(msg)
	case screenCart:
		return m.updateCartKey(msg)
	case screenPay:
		return m.updatePayKey(msg)
	}
	return m, nil
}

func (m mainModel) updateSalesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.sales.moveUp()
	case key.Matches(msg, keys.down):
		m.sales.moveDown()
	case key.Matches(msg, keys.newSale):
		m.currentScreen = screenCart
		m.cart.loading = true
		return m, m.cmdLoadProducts()
	case key.Matches(msg, keys.pay):
		if sale, ok := m.sales.selected(); ok {
			m.pay.reset(sale)
			m.currentScreen = screenPay
		}
	case key.Matches(msg, keys.sync):
		m.status = "Синхронизация..."
		return m, m.cmdSync()
	case key.Matches(msg, keys.refresh):
		m.showConfirm = true
		m.confirm.message = "Сбросить кэш каталога и загрузить заново с сервера?"
		return m, nil
	case key.Matches(msg, keys.copy):
		if sale, ok := m.sales.selected(); ok {
			return m, m.cmdCopyRef(sale.TempID)
		}
	}
	return m, nil
}

func (m mainModel) updateCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenSales
		return m, nil
	case key.Matches(msg, keys.tab):
		m.cart.togglePayFocus()
		return m, nil
	case key.Matches(msg, keys.enter):
		items := m.cart.items()
		if len(items) == 0 {
			return m.withError(errors.New("чек пуст — добавьте товары")), nil
		}
		payments, err := m.cart.payments()
		if err != nil {
			return m.withError(err), nil
		}
		return m, m.cmdRecordSale(items, payments)
	}

	if m.cart.payFocused {
		var cmd tea.Cmd
		m.cart.payInput, cmd = m.cart.payInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.up):
		m.cart.moveUp()
	case key.Matches(msg, keys.down):
		m.cart.moveDown()
	case key.Matches(msg, keys.plus):
		m.cart.addOne()
	case key.Matches(msg, keys.minus):
		m.cart.removeOne()
	case key.Matches(msg, keys.refresh):
		m.showConfirm = true
		m.confirm.message = "Сбросить кэш каталога и загрузить заново с сервера?"
		return m, nil
	}
	return m, nil
}

func (m mainModel) updatePayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenSales
		return m, nil
	case key.Matches(msg, keys.tab):
		m.pay.nextMethod()
		return m, nil
	case key.Matches(msg, keys.enter):
		payment, err := m.pay.payment()
		if err != nil {
			m.pay.errMsg = err.Error()
			return m, nil
		}
		return m, m.cmdRecordPayment(m.pay.sale.TempID, payment)
	}

	var cmd tea.Cmd
	m.pay.amount, cmd = m.pay.amount.Update(msg)
	return m, cmd
}

// updateFocusedInput forwards non-key messages (cursor blink ticks) to the
// text input that currently owns the cursor.
func (m mainModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScreen {
	case screenCart:
		m.cart.payInput, cmd = m.cart.payInput.Update(msg)
	case screenPay:
		m.pay.amount, cmd = m.pay.amount.Update(msg)
	}
	return m, cmd
}

func (m mainModel) View() string {
	if m.showError {
		return m.overlay.View()
	}

	var title, body, hotKeys string
	switch m.currentScreen {
	case screenSales:
		title = "КАССА — ЖУРНАЛ ПРОДАЖ"
		body = m.sales.view()
		hotKeys = "n: новая продажа │ p: доплата │ s: синхронизация │ r: кэш │ c: копировать │ q: выход"
	case screenCart:
		title = "НОВАЯ ПРОДАЖА"
		body = m.cart.view()
		hotKeys = "+/-: кол-во │ tab: оплата │ enter: записать чек │ esc: отмена"
	case screenPay:
		title = "ДОПЛАТА"
		body = m.pay.view()
		hotKeys = "tab: способ оплаты │ enter: записать │ esc: отмена"
	}

	if m.status != "" {
		body = m.status + "\n\n" + body
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}

	return renderPage(title, body, hotKeys)
}

func (m mainModel) withError(err error) mainModel {
	m.showError = true
	m.overlay.message = humanizeServerUnavailableError(err)
	return m
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m mainModel) cmdLoadSales() tea.Cmd {
	ctx, recorder := m.ctx, m.services.Recorder
	return func() tea.Msg {
		sales, err := recorder.ListSales(ctx)
		return salesLoadedMsg{sales: sales, err: err}
	}
}

func (m mainModel) cmdLoadProducts() tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		products, err := cache.GetAllProducts(ctx)
		return productsLoadedMsg{products: products, err: err}
	}
}

func (m mainModel) cmdRecordSale(items []models.SaleItem, payments []models.PaymentRecord) tea.Cmd {
	ctx, recorder := m.ctx, m.services.Recorder
	return func() tea.Msg {
		sale, err := recorder.RecordSale(ctx, items, payments)
		return saleRecordedMsg{sale: sale, err: err}
	}
}

func (m mainModel) cmdRecordPayment(tempID string, payment models.PaymentRecord) tea.Cmd {
	ctx, recorder := m.ctx, m.services.Recorder
	return func() tea.Msg {
		sale, err := recorder.RecordPayment(ctx, tempID, payment)
		return paymentDoneMsg{sale: sale, err: err}
	}
}

func (m mainModel) cmdSync() tea.Cmd {
	ctx, synchronizer := m.ctx, m.services.Synchronizer
	return func() tea.Msg {
		report, err := synchronizer.SyncNow(ctx)
		return syncDoneMsg{report: report, err: err}
	}
}

func (m mainModel) cmdRefreshCaches() tea.Cmd {
	ctx, refresher := m.ctx, m.services.CacheRefresher
	return func() tea.Msg {
		stats, err := refresher.RefreshCaches(ctx)
		return cacheRefreshedMsg{stats: stats, err: err}
	}
}

func (m mainModel) cmdCopyRef(tempID string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(tempID); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func (m mainModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
