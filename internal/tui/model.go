package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	refreshInterval = 200 * time.Millisecond
	defaultBarWidth = 40
	nameWidth       = 32
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model is the bubbletea model of the progress view.
type model struct {
	ctx       context.Context
	progress  *Progress
	status    service.StatusService
	buildInfo models.AppBuildInfo

	spinner spinner.Model
	bar     progress.Model

	report models.StatusReport
	slots  []slotProgress
	recent []finishedTransfer

	quitByUser bool
}

func newModel(ctx context.Context, p *Progress, status service.StatusService, buildInfo models.AppBuildInfo) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := model{
		ctx:       ctx,
		progress:  p,
		status:    status,
		buildInfo: buildInfo,
		spinner:   s,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
	}
	m.refresh()

	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = barWidth(msg.Width)
	case tickMsg:
		m.refresh()
		return m, tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) refresh() {
	m.slots, m.recent = m.progress.snapshot()
	if m.status != nil {
		m.report = m.status.Status(m.ctx)
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	for i, slot := range m.slots {
		b.WriteString(m.slotRow(i, slot))
		b.WriteString("\n")
	}

	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Recent"))
		b.WriteString("\n")
		for _, f := range m.recent {
			b.WriteString(recentRow(f))
			b.WriteString("\n")
		}
	}

	return appStyle.Render(renderPage(b.String(), buildLine(m.buildInfo), "q: quit"))
}

func (m model) header() string {
	d := m.report.Driver
	sched := m.report.Scheduler

	state := string(d.State)
	if state == "" {
		state = string(models.CycleIdle)
	}
	if d.State == models.CycleRunning || d.State == models.CycleDraining {
		state = m.spinner.View() + " " + state
	}

	line := fmt.Sprintf("%s  queued %d  active %d/%d  total %d",
		titleStyle.Render(state), sched.Queued, sched.Active, sched.MaxConcurrency, sched.TotalEnqueued)
	if d.NextCycleAt != nil {
		line += helpStyle.Render("  next cycle " + d.NextCycleAt.Local().Format(time.TimeOnly))
	}

	return line
}

func (m model) slotRow(i int, slot slotProgress) string {
	label := fmt.Sprintf("#%d ", i+1)
	if !slot.busy {
		return label + helpStyle.Render("idle")
	}

	row := label + fmt.Sprintf("%-*s ", nameWidth, fitText(slot.name, nameWidth)) +
		m.bar.ViewAs(slot.percent()) + " " +
		humanBytes(slot.written) + "/" + humanBytes(slot.total)
	if slot.offset > 0 {
		row += helpStyle.Render(" resumed")
	}

	return row
}

func recentRow(f finishedTransfer) string {
	if f.err != nil {
		return errorStyle.Render("✗ ") + f.name + helpStyle.Render(" "+f.err.Error())
	}
	return okStyle.Render("✓ ") + f.name + helpStyle.Render(" "+humanBytes(f.size))
}

func barWidth(windowWidth int) int {
	w := windowWidth - nameWidth - 30
	switch {
	case w < 10:
		return 10
	case w > 60:
		return 60
	default:
		return w
	}
}
