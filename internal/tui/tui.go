package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

var _ service.ProgressReporter = (*Progress)(nil)

// ErrUserQuit is returned by Run when the user closed the progress view.
var ErrUserQuit = errors.New("progress view closed by user")

// TUI renders one row per scheduler slot while the daemon runs.
// It implements [service.ProgressReporter].
type TUI struct {
	*Progress

	status    service.StatusService
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger
}

// New builds the progress view over p, which must be the reporter handed to
// the sync engine.
func New(p *Progress, status service.StatusService, buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{
		Progress:  p,
		status:    status,
		buildInfo: buildInfo,
		options:   append([]tea.ProgramOption{tea.WithAltScreen()}, options...),
		logger:    logger,
	}
}

// Run blocks until ctx ends or the user quits the view.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newModel(ctx, t.Progress, t.status, t.buildInfo), t.options...)

	stop := context.AfterFunc(ctx, program.Quit)
	defer stop()

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("progress view failed")
		return err
	}

	if result, ok := finalModel.(model); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
