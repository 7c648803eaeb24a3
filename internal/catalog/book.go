package catalog

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"Bookshop/pkg/kit"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrNotFound          = kit.NewError("not_found", "book not found")
	ErrInvalidTransition = kit.NewError("invalid_transition", "invalid availability transition")

	ErrAlreadyOwned = kit.WrapError(ErrInvalidTransition, "already_owned", "book already owned")
	ErrNotOwned     = kit.WrapError(ErrInvalidTransition, "not_owned", "book not owned")
	ErrNotPurchased = kit.WrapError(ErrInvalidTransition, "not_purchased", "book must be purchased first")
)

const (
	StatusAvailable = "Available"
	StatusOwned     = "Owned"
)

// Book is an immutable catalog entry. Availability can only be changed by
// the store that owns it.
type Book struct {
	title     string
	author    string
	content   string
	available bool
}

func NewBook(title, author, content string) Book {
	return Book{title: title, author: author, content: content, available: true}
}

func (b Book) Title() string   { return b.title }
func (b Book) Author() string  { return b.author }
func (b Book) Content() string { return b.content }
func (b Book) Available() bool { return b.available }

// Status is StatusAvailable while the book is for sale, StatusOwned otherwise.
func (b Book) Status() string {
	if b.available {
		return StatusAvailable
	}
	return StatusOwned
}

func (b Book) String() string {
	return fmt.Sprintf("'%s' by %s (%s)", b.title, b.author, b.Status())
}

func (b Book) withAvailability(v bool) Book {
	b.available = v
	return b
}

type bookJSON struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Available bool   `json:"available"`
}

func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookJSON{
		Title:     b.title,
		Author:    b.author,
		Content:   b.content,
		Available: b.available,
	})
}

// Entry pairs a book with the id the store assigned to it.
type Entry struct {
	ID   int  `json:"id"`
	Book Book `json:"book"`
}

func (e Entry) Summary() string {
	return e.Book.String()
}
