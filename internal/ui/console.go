package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"
	"time"
)

const alertDismissAfter = 3 * time.Second

// Console renders screens to a terminal writer.
type Console struct {
	mu         sync.Mutex
	out        io.Writer
	alert      string
	alertTimer *time.Timer
	loading    int
	page       string
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) ShowLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading++
	if c.loading == 1 {
		fmt.Fprintln(c.out, "loading...")
	}
}

func (c *Console) HideLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading > 0 {
		c.loading--
	}
}

func (c *Console) Success(message string) { c.notice("OK", message) }

func (c *Console) Error(message string) { c.notice("ERROR", message) }

func (c *Console) notice(level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.alert = message
	fmt.Fprintf(c.out, "[%s] %s\n", level, message)

	if c.alertTimer != nil {
		c.alertTimer.Stop()
	}
	c.alertTimer = time.AfterFunc(alertDismissAfter, func() {
		c.mu.Lock()
		c.alert = ""
		c.mu.Unlock()
	})
}

// CurrentAlert reports the notice still on screen, empty once dismissed.
func (c *Console) CurrentAlert() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alert
}

func (c *Console) RenderTable(t Table) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.Columns, "\t"))

	if len(t.Rows) == 0 {
		// one row, padded out to the full column span
		cells := make([]string, t.Span())
		cells[0] = t.Empty
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	} else {
		for _, row := range t.Rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
	}
	_ = w.Flush()
}

func (c *Console) RenderLines(lines []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) ShowModal(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "=== %s ===\n", title)
}

func (c *Console) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, "===")
}

func (c *Console) Navigate(page string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
	fmt.Fprintf(c.out, "-> %s\n", page)
}

// CurrentPage reports the last navigation target.
func (c *Console) CurrentPage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// ConsoleControl is the terminal rendition of an auth submit button.
type ConsoleControl struct {
	mu       sync.Mutex
	out      io.Writer
	disabled bool
	label    string
}

func NewConsoleControl(out io.Writer) *ConsoleControl {
	return &ConsoleControl{out: out}
}

func (b *ConsoleControl) Disable(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = true
	b.label = label
	fmt.Fprintf(b.out, "[submit disabled] %s\n", label)
}

func (b *ConsoleControl) SetLabel(label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = label
	fmt.Fprintf(b.out, "[submit] %s\n", label)
}

func (b *ConsoleControl) Enable() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = false
	b.label = ""
	fmt.Fprintln(b.out, "[submit enabled]")
}

func (b *ConsoleControl) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}
