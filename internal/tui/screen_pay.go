package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"

	"github.com/ozerovd/go-sale-keeper/models"
)

var payMethods = []string{"cash", "card", "transfer"}

var payMethodLabels = map[string]string{
	"cash":     "наличные",
	"card":     "карта",
	"transfer": "перевод",
}

// payModel is the form for taking an additional payment on a recorded sale.
type payModel struct {
	sale      models.PendingSale
	amount    textinput.Model
	methodIdx int
	errMsg    string
}

func newPayModel() payModel {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Width = 12

	return payModel{amount: amount}
}

func (m *payModel) reset(sale models.PendingSale) {
	m.sale = sale
	m.methodIdx = 0
	m.errMsg = ""
	m.amount.SetValue("")

	// предзаполняем остатком к оплате
	due := sale.TotalAmount.Sub(sale.PaidAmount)
	if due.GreaterThan(decimal.Zero) {
		m.amount.SetValue(due.StringFixed(2))
	}
	m.amount.Focus()
}

func (m *payModel) nextMethod() {
	m.methodIdx = (m.methodIdx + 1) % len(payMethods)
}

func (m payModel) method() string {
	return payMethods[m.methodIdx]
}

// payment parses the form into a payment record.
func (m payModel) payment() (models.PaymentRecord, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(m.amount.Value()))
	if err != nil {
		return models.PaymentRecord{}, fmt.Errorf("некорректная сумма: %q", m.amount.Value())
	}

	return models.PaymentRecord{Method: m.method(), Amount: amount}, nil
}

func (m payModel) view() string {
	var b strings.Builder

	b.WriteString("Чек: ")
	b.WriteString(shortRef(m.sale.TempID))
	b.WriteString("\n")
	b.WriteString("Сумма чека: ")
	b.WriteString(money(m.sale.TotalAmount))
	b.WriteString(", оплачено: ")
	b.WriteString(money(m.sale.PaidAmount))
	b.WriteString("\n\n")

	b.WriteString("Сумма  │ [")
	b.WriteString(m.amount.View())
	b.WriteString("]\n")
	b.WriteString("Способ │ ")
	b.WriteString(payMethodLabels[m.method()])
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
	}

	return strings.TrimRight(b.String(), "\n")
}
