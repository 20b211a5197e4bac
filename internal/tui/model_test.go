package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

func testModel() Model {
	return NewModel(func(context.Context) feeds.Result {
		return feeds.Result{
			Posts: []feeds.Post{
				{Company: "Alpha", Title: "Alpha Ships Its Biggest Release", Published: time.Now()},
				{Company: "Beta", Title: "Beta Announces A Strategic Pivot", Published: time.Now()},
			},
			Companies: []string{"Alpha", "Beta"},
		}
	})
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelLoadsResult(t *testing.T) {
	m := testModel()
	if m.mode != loadingView {
		t.Fatal("new model should start loading")
	}

	next, _ := m.Update(resultMsg{result: m.aggregate(context.Background())})
	m = next.(Model)
	if m.mode != listView {
		t.Errorf("mode = %v, want list after result", m.mode)
	}
	if len(m.result.Posts) != 2 {
		t.Errorf("posts = %d, want 2", len(m.result.Posts))
	}
}

func TestModelNavigation(t *testing.T) {
	m := testModel()
	next, _ := m.Update(resultMsg{result: m.aggregate(context.Background())})
	m = next.(Model)

	next, _ = m.Update(key("j"))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}

	// Bottom of list: j is a no-op.
	next, _ = m.Update(key("j"))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want clamp at 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.mode != detailView || m.selected != 1 {
		t.Errorf("mode = %v selected = %d, want detail of post 1", m.mode, m.selected)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.mode != listView {
		t.Errorf("mode = %v, want back to list", m.mode)
	}
}

func TestModelRefresh(t *testing.T) {
	m := testModel()
	next, _ := m.Update(resultMsg{result: m.aggregate(context.Background())})
	m = next.(Model)

	next, cmd := m.Update(key("r"))
	m = next.(Model)
	if m.mode != loadingView {
		t.Errorf("mode = %v, want loading after refresh", m.mode)
	}
	if cmd == nil {
		t.Error("refresh should schedule a fetch command")
	}
}
