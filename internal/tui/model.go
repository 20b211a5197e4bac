// Package tui is a terminal front end for browsing the aggregated feed.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

// viewMode is the current screen.
type viewMode int

const (
	loadingView viewMode = iota
	listView
	detailView
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	companyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// resultMsg delivers a finished aggregation run to the model.
type resultMsg struct {
	result feeds.Result
}

// Aggregate runs one full fetch; the model calls it off the UI loop.
type Aggregate func(ctx context.Context) feeds.Result

// Model is the Bubble Tea model for the feed browser.
type Model struct {
	aggregate Aggregate
	spinner   spinner.Model
	result    feeds.Result
	mode      viewMode
	cursor    int
	selected  int
	width     int
	height    int
}

// NewModel creates a Model that fetches via aggregate.
func NewModel(aggregate Aggregate) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		aggregate: aggregate,
		spinner:   sp,
		mode:      loadingView,
		selected:  -1,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: m.aggregate(context.Background())}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		m.result = msg.result
		m.mode = listView
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if m.mode != loadingView {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	switch m.mode {
	case listView:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.result.Posts)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.result.Posts) > 0 {
				m.selected = m.cursor
				m.mode = detailView
			}
		case "r":
			m.mode = loadingView
			return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
		}
	case detailView:
		if msg.String() == "esc" {
			m.mode = listView
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	switch m.mode {
	case loadingView:
		return fmt.Sprintf("\n %s fetching sources...\n", m.spinner.View())
	case detailView:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m Model) renderList() string {
	var b strings.Builder

	header := fmt.Sprintf("pressdeck — %d posts from %d companies", len(m.result.Posts), len(m.result.Companies))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	for _, e := range m.result.Errors {
		b.WriteString(errorStyle.Render("! " + e))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		post := m.result.Posts[i]
		line := fmt.Sprintf("%s  %s  %s",
			dimStyle.Render(post.Published.UTC().Format("Jan 02")),
			companyStyle.Render(fmt.Sprintf("%-12s", post.Company)),
			post.Title)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("→ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k: navigate • enter: details • r: refresh • q: quit"))
	return b.String()
}

// visibleRange windows the post list around the cursor.
func (m Model) visibleRange() (int, int) {
	total := len(m.result.Posts)
	if m.height <= 0 {
		return 0, total
	}
	maxVisible := m.height - 5 - len(m.result.Errors)
	if maxVisible <= 0 || maxVisible >= total {
		return 0, total
	}
	start := m.cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
	}
	return start, end
}

func (m Model) renderDetail() string {
	if m.selected < 0 || m.selected >= len(m.result.Posts) {
		return "No post selected"
	}
	post := m.result.Posts[m.selected]

	var b strings.Builder
	b.WriteString(companyStyle.Render(post.Company))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(post.Title))
	b.WriteString("\n\n")
	if post.Summary != "" {
		b.WriteString(post.Summary)
		b.WriteString("\n\n")
	}
	b.WriteString(dimStyle.Render(post.DisplayTime()))
	b.WriteString("\n")
	b.WriteString(post.Link)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("esc: back • q: quit"))
	return b.String()
}

// Run starts the Bubble Tea program.
func Run(aggregate Aggregate) error {
	p := tea.NewProgram(NewModel(aggregate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
