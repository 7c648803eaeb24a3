package term

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"Bookshop/internal/catalog"
)

func TestPalette(t *testing.T) {
	assert.Equal(t, "x", NewPalette(false).Red("x"))
	assert.Equal(t, ColorRed+"x"+ColorReset, NewPalette(true).Red("x"))
}

func TestColorEnabled_ExplicitModes(t *testing.T) {
	assert.True(t, ColorEnabled(ColorAlways, os.Stdout))
	assert.True(t, ColorEnabled("ALWAYS", os.Stdout))
	assert.False(t, ColorEnabled(ColorNever, os.Stdout))
}

func TestColorEnabled_AutoOnNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()

	assert.False(t, ColorEnabled(ColorAuto, f))
}

func TestConsole_PlainOutputHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, NewPalette(false))

	c.Clear()
	c.Header("MENU")
	c.Success("done")

	out := buf.String()
	assert.NotContains(t, out, "\033")
	assert.Contains(t, out, strings.Repeat("=", 60))
	assert.Contains(t, out, "\ndone\n")
}

func TestConsole_ClearWhenColoured(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, NewPalette(true)).Clear()

	assert.Equal(t, clearScreen, buf.String())
}

func TestConsole_EntryAndSummary(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, NewPalette(false))
	s := catalog.NewMemStore()
	id := s.Add("Dune", "Herbert", "")

	b, _ := s.Get(id)
	assert.Equal(t, "'Dune' by Herbert (Available)", c.Summary(b))
	assert.Equal(t, "ID 1: 'Dune' by Herbert (Available)", c.Entry(catalog.Entry{ID: id, Book: b}))

	_ = s.Purchase(id)
	b, _ = s.Get(id)
	assert.Equal(t, "'Dune' by Herbert (Owned)", c.Summary(b))
}

func TestConsole_BookView(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, NewPalette(false))

	c.Book(catalog.NewBook("Dune", "Herbert", "A beginning is the time.\nSecond paragraph."))

	out := buf.String()
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "A beginning is the time.")
	assert.Contains(t, out, "Second paragraph.")
	assert.Contains(t, out, "Written by Herbert")
	assert.Less(t, strings.Index(out, "A beginning"), strings.Index(out, "Second paragraph."))
}
