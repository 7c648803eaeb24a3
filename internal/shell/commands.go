package shell

import (
	"errors"
	"fmt"

	"Bookshop/internal/catalog"
)

func (s *Shell) screen(title string) {
	s.Screen.Clear()
	s.Screen.Header(title)
}

// report prints the user-facing message for a failed command.
func (s *Shell) report(err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		s.Screen.Failure("Invalid ID")
	case errors.Is(err, catalog.ErrNotFound):
		s.Screen.Failure("Book not found")
	case errors.Is(err, catalog.ErrAlreadyOwned):
		s.Screen.Failure("You already own this book")
	case errors.Is(err, catalog.ErrNotOwned):
		s.Screen.Failure("This book has not been purchased")
	case errors.Is(err, catalog.ErrNotPurchased):
		s.Screen.Failure("You must buy this book before you can read it")
	default:
		s.Screen.Failure(err.Error())
	}
}

// fail reports err and pauses. Input errors are passed through unreported.
func (s *Shell) fail(err error) error {
	if isReported(err) {
		s.report(err)
		s.pause(outcomePause)
	}
	return err
}

func isReported(err error) bool {
	return errors.Is(err, ErrInvalidID) ||
		errors.Is(err, catalog.ErrNotFound) ||
		errors.Is(err, catalog.ErrInvalidTransition)
}

func (s *Shell) waitEnter(text string) error {
	s.Screen.Prompt(text)
	_, err := s.Input.Line()
	return err
}

func (s *Shell) readID(prompt string) (int, error) {
	s.Screen.Prompt(prompt)
	return s.Input.ID()
}

func (s *Shell) readFields(titlePrompt, authorPrompt, contentPrompt string) (title, author, content string, err error) {
	s.Screen.Prompt(titlePrompt)
	if title, err = s.Input.Line(); err != nil {
		return "", "", "", err
	}
	s.Screen.Prompt(authorPrompt)
	if author, err = s.Input.Line(); err != nil {
		return "", "", "", err
	}
	s.Screen.Prompt(contentPrompt + "\n")
	if content, err = s.Input.Lines(); err != nil {
		return "", "", "", err
	}
	return title, author, content, nil
}

func (s *Shell) create() error {
	s.screen("CREATE A BOOK")

	title, author, content, err := s.readFields("Title: ", "Author: ", "Content (press Enter on an empty line to finish):")
	if err != nil {
		return err
	}

	id := s.Store.Add(title, author, content)
	s.Screen.Success(fmt.Sprintf("Book created with ID: %d", id))
	s.pause(outcomePause)
	return nil
}

func (s *Shell) list() error {
	s.screen("BOOK LIST")

	entries := s.Store.List()
	if len(entries) == 0 {
		s.Screen.Failure("No books available")
	}
	for _, e := range entries {
		s.Screen.Line(s.Screen.Entry(e))
	}

	return s.waitEnter("\nPress Enter to continue...")
}

func (s *Shell) update() error {
	s.screen("UPDATE A BOOK")

	id, err := s.readID("ID of the book to update: ")
	if err != nil {
		return s.fail(err)
	}

	title, author, content, err := s.readFields("New title: ", "New author: ", "New content (press Enter on an empty line to finish):")
	if err != nil {
		return err
	}

	if !s.Store.Update(id, title, author, content) {
		return s.fail(catalog.ErrNotFound)
	}
	s.Screen.Success("Book updated")
	s.pause(outcomePause)
	return nil
}

func (s *Shell) delete() error {
	s.screen("DELETE A BOOK")

	id, err := s.readID("ID of the book to delete: ")
	if err != nil {
		return s.fail(err)
	}

	if !s.Store.Delete(id) {
		return s.fail(catalog.ErrNotFound)
	}
	s.Screen.Success("Book deleted")
	s.pause(outcomePause)
	return nil
}

// details waits for Enter whatever the outcome, so it reports without pausing.
func (s *Shell) details() error {
	s.screen("BOOK DETAILS")

	id, err := s.readID("Book ID: ")
	if err == nil {
		b, ok := s.Store.Get(id)
		if ok {
			s.Screen.Line("\nBook details:\n" + s.Screen.Summary(b))
		} else {
			err = catalog.ErrNotFound
		}
	}
	if err != nil {
		if !isReported(err) {
			return err
		}
		s.report(err)
	}

	if werr := s.waitEnter("\nPress Enter to continue..."); werr != nil {
		return werr
	}
	return err
}

func (s *Shell) buy() error {
	s.screen("BUY A BOOK")

	id, err := s.readID("ID of the book to buy: ")
	if err != nil {
		return s.fail(err)
	}

	if err := s.Store.Purchase(id); err != nil {
		return s.fail(err)
	}
	s.Screen.Success("Book purchased successfully")
	s.pause(outcomePause)
	return nil
}

func (s *Shell) read() error {
	s.screen("READ A BOOK")

	id, err := s.readID("ID of the book to read: ")
	if err != nil {
		return s.fail(err)
	}

	b, err := s.Store.Read(id)
	if err != nil {
		return s.fail(err)
	}

	s.Screen.Book(b)
	return s.waitEnter("Press Enter to return to the menu...")
}

func (s *Shell) giveBack() error {
	s.screen("RETURN A BOOK")

	id, err := s.readID("ID of the book to return: ")
	if err != nil {
		return s.fail(err)
	}

	if err := s.Store.Return(id); err != nil {
		return s.fail(err)
	}
	s.Screen.Success("Book returned successfully")
	s.pause(outcomePause)
	return nil
}
