package tui

import (
	"context"
	"errors"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ozerovd/go-sale-keeper/internal/adapter"
	"github.com/ozerovd/go-sale-keeper/internal/localstore"
	"github.com/ozerovd/go-sale-keeper/internal/logger"
	"github.com/ozerovd/go-sale-keeper/internal/pos"
	"github.com/ozerovd/go-sale-keeper/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// TUI owns the terminal user interface: the login flow and the main till
// loop. It also exposes a [pos.Notifier] that pipes background sync events
// into whichever Bubble Tea program is currently running. The notifier is
// usable before any program starts, so the TUI can be created first and the
// services wired to it afterwards.
type TUI struct {
	cache  localstore.Cache
	server adapter.ServerAdapter

	program atomic.Pointer[tea.Program]
}

func New(cache localstore.Cache, server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		cache:  cache,
		server: server,
	}, nil
}

// LoginFlow runs the menu/login/register pages until the operator is
// authenticated or quits.
func (t *TUI) LoginFlow(ctx context.Context) (userID int64, err error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.server),
		"register": NewRegisterModel(ctx, t.server),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return 0, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return 0, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return 0, ErrUserQuit
	}

	return result.resultID, nil
}

// MainLoop runs the till loop until the operator quits. While it runs, events
// sent through [TUI.Notifier] repaint the journal.
func (t *TUI) MainLoop(ctx context.Context, services *pos.Services) error {
	model := newMainModel(ctx, services, t.cache)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.program.Store(program)
	defer t.program.Store(nil)

	_, runErr := program.Run()
	return runErr
}

// Notifier returns a [pos.Notifier] that forwards background events to the
// running program. Events arriving while no program runs are dropped.
func (t *TUI) Notifier() pos.Notifier {
	return &programNotifier{tui: t}
}

type programNotifier struct {
	tui *TUI
}

func (n *programNotifier) send(msg tea.Msg) {
	if p := n.tui.program.Load(); p != nil {
		p.Send(msg)
	}
}

func (n *programNotifier) SaleRecorded(sale models.PendingSale) {
	n.send(saleRecordedMsg{sale: sale})
}

func (n *programNotifier) SyncFinished(report models.SyncReport) {
	n.send(syncDoneMsg{report: report})
}

func (n *programNotifier) SyncError(err error) {
	n.send(syncDoneMsg{err: err})
}

func (n *programNotifier) CacheRefreshed(stats models.CacheRefreshStats) {
	n.send(cacheRefreshedMsg{stats: stats})
}
