package term

import (
	"fmt"
	"io"
	"strings"

	"Bookshop/internal/catalog"
	"Bookshop/internal/render"
)

// Console renders screens as plain or coloured text on w.
type Console struct {
	w io.Writer
	p Palette
}

func NewConsole(w io.Writer, p Palette) *Console {
	return &Console{w: w, p: p}
}

func (c *Console) rule() string {
	return strings.Repeat("=", render.FieldWidth)
}

// Clear wipes the terminal. It does nothing when colours are off, so piped
// output stays free of control sequences.
func (c *Console) Clear() {
	if c.p.Enabled() {
		fmt.Fprint(c.w, clearScreen)
	}
}

func (c *Console) Header(text string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.p.Blue(c.rule()))
	fmt.Fprintln(c.w, c.p.Blue(render.Center(text, render.FieldWidth)))
	fmt.Fprintln(c.w, c.p.Blue(c.rule()))
	fmt.Fprintln(c.w)
}

func (c *Console) Line(text string) {
	fmt.Fprintln(c.w, text)
}

func (c *Console) Section(text string) {
	fmt.Fprintln(c.w, c.p.Cyan(text))
}

func (c *Console) MenuItem(key, desc string) {
	fmt.Fprintf(c.w, "%s: %s\n", c.p.Green(key), desc)
}

// Prompt prints text without a trailing newline.
func (c *Console) Prompt(text string) {
	fmt.Fprint(c.w, c.p.Yellow(text))
}

func (c *Console) Success(text string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.p.Green(text))
}

func (c *Console) Failure(text string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.p.Red(text))
}

// Entry formats one listing row: id, quoted title, author and status.
func (c *Console) Entry(e catalog.Entry) string {
	return fmt.Sprintf("ID %s: %s", c.p.Green(fmt.Sprint(e.ID)), c.Summary(e.Book))
}

func (c *Console) Summary(b catalog.Book) string {
	status := c.p.Green("(" + catalog.StatusAvailable + ")")
	if !b.Available() {
		status = c.p.Red("(" + catalog.StatusOwned + ")")
	}
	return fmt.Sprintf("%s by %s %s", c.p.Cyan("'"+b.Title()+"'"), c.p.Yellow(b.Author()), status)
}

// Book draws the reading view: title banner, wrapped content, author footer.
func (c *Console) Book(b catalog.Book) {
	c.Clear()
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.p.Blue(c.rule()))
	fmt.Fprintln(c.w, c.p.Yellow(render.Center(b.Title(), render.FieldWidth)))
	fmt.Fprintln(c.w, c.p.Blue(c.rule()))
	fmt.Fprintln(c.w)

	for _, line := range render.Wrap(b.Content(), render.MaxLineWidth, render.FieldWidth) {
		fmt.Fprintln(c.w, line)
	}

	fmt.Fprintln(c.w, c.p.Blue(c.rule()))
	fmt.Fprintln(c.w, c.p.Yellow(render.Center("Written by "+b.Author(), render.FieldWidth)))
	fmt.Fprintln(c.w, c.p.Blue(c.rule()))
	fmt.Fprintln(c.w)
}
