// Package ui holds the surfaces the controllers draw on. The original pages
// grabbed DOM nodes by id; here every touch point is an explicit interface so
// a terminal, a test fake or anything else can stand behind it.
package ui

// Table is a rendered collection view. When Rows is empty the renderer shows
// exactly one placeholder row spanning all columns.
type Table struct {
	Columns []string
	Rows    [][]string
	Empty   string
}

// Span is the column count a placeholder row has to cover.
func (t Table) Span() int { return len(t.Columns) }

type Screen interface {
	ShowLoading()
	HideLoading()

	// Success and Error show a transient notice that dismisses itself
	// after three seconds.
	Success(message string)
	Error(message string)

	RenderTable(t Table)
	RenderLines(lines []string)

	ShowModal(title string)
	CloseModal()
}

type Navigator interface {
	Navigate(page string)
}

// SubmitControl is the submit button of an auth form. The lockout countdown
// drives it once per second.
type SubmitControl interface {
	Disable(label string)
	SetLabel(label string)
	Enable()
}
