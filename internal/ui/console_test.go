package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleRenderTablePlaceholder(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderTable(Table{
		Columns: []string{"ID", "Name", "Actions"},
		Empty:   "No clients found",
	})

	out := buf.String()
	if !strings.Contains(out, "No clients found") {
		t.Errorf("output missing placeholder:\n%s", out)
	}
	// header plus exactly one placeholder row
	if got := strings.Count(strings.TrimRight(out, "\n"), "\n"); got != 1 {
		t.Errorf("expected 2 lines, got %d:\n%s", got+1, out)
	}
}

func TestConsoleRenderTableRows(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderTable(Table{
		Columns: []string{"ID", "Name"},
		Rows:    [][]string{{"#1", "Alice"}, {"#2", "Bruno"}},
		Empty:   "No clients found",
	})

	out := buf.String()
	if strings.Contains(out, "No clients found") {
		t.Error("placeholder must not render when rows exist")
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Bruno") {
		t.Errorf("rows missing:\n%s", out)
	}
}

func TestConsoleAlertAndNavigation(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Success("Client created successfully")
	if got := c.CurrentAlert(); got != "Client created successfully" {
		t.Errorf("alert = %q", got)
	}

	c.Navigate("dashboard")
	if got := c.CurrentPage(); got != "dashboard" {
		t.Errorf("page = %q", got)
	}
	if !strings.Contains(buf.String(), "-> dashboard") {
		t.Errorf("navigation not written:\n%s", buf.String())
	}
}

func TestConsoleLoadingIsRefCounted(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.ShowLoading()
	c.ShowLoading()
	c.HideLoading()
	c.HideLoading()

	if got := strings.Count(buf.String(), "loading..."); got != 1 {
		t.Errorf("loading printed %d times, want 1", got)
	}
}

func TestConsoleControl(t *testing.T) {
	var buf bytes.Buffer
	b := NewConsoleControl(&buf)

	b.Disable("Locked for 60 seconds")
	if !b.Disabled() {
		t.Error("control should be disabled")
	}
	b.SetLabel("Locked for 59 seconds")
	b.Enable()
	if b.Disabled() {
		t.Error("control should be enabled again")
	}
}
