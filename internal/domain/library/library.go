package library

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/ballpark/internal/platform/logging"
)

// Outcome is the result of a lending operation.
type Outcome string

const (
	CheckedOut        Outcome = "checked_out"
	AlreadyCheckedOut Outcome = "already_checked_out"
	Returned          Outcome = "returned"
	NotCheckedOut     Outcome = "not_checked_out"
	Downloaded        Outcome = "downloaded"
	AlreadyDownloaded Outcome = "already_downloaded"
	NotFound          Outcome = "not_found"
	NotDownloadable   Outcome = "not_downloadable"
)

// Library keeps books in the order they were added. Lookups return the first
// book with a matching ISBN.
type Library struct {
	books  []*Book
	logger *logging.Logger
}

func New(logger *logging.Logger) *Library {
	if logger == nil {
		logger = logging.Default()
	}
	return &Library{logger: logger.Named("library")}
}

func (l *Library) AddBook(ctx context.Context, book *Book) error {
	if book == nil {
		return crerr.New("book is required")
	}

	l.books = append(l.books, book)
	l.logger.InfoContext(ctx, "book added", "title", book.title, "isbn", book.isbn, "kind", book.kind)
	return nil
}

func (l *Library) SearchBook(isbn string) (*Book, bool) {
	idx := l.indexOf(isbn)
	if idx < 0 {
		return nil, false
	}
	return l.books[idx], true
}

func (l *Library) CheckOut(ctx context.Context, isbn string) Outcome {
	book, ok := l.SearchBook(isbn)
	if !ok {
		return l.report(ctx, "check out", isbn, NotFound)
	}
	return l.report(ctx, "check out", isbn, policyFor(book.kind).checkOut(book))
}

func (l *Library) Return(ctx context.Context, isbn string) Outcome {
	book, ok := l.SearchBook(isbn)
	if !ok {
		return l.report(ctx, "return", isbn, NotFound)
	}
	return l.report(ctx, "return", isbn, policyFor(book.kind).giveBack(book))
}

func (l *Library) Download(ctx context.Context, isbn string) Outcome {
	book, ok := l.SearchBook(isbn)
	if !ok {
		return l.report(ctx, "download", isbn, NotFound)
	}
	if book.kind != KindElectronic {
		return l.report(ctx, "download", isbn, NotDownloadable)
	}
	if book.downloaded {
		return l.report(ctx, "download", isbn, AlreadyDownloaded)
	}
	book.downloaded = true
	return l.report(ctx, "download", isbn, Downloaded)
}

// RemoveBook drops the first book with the given ISBN.
func (l *Library) RemoveBook(ctx context.Context, isbn string) bool {
	idx := l.indexOf(isbn)
	if idx < 0 {
		l.report(ctx, "remove", isbn, NotFound)
		return false
	}

	l.books = append(l.books[:idx], l.books[idx+1:]...)
	l.logger.InfoContext(ctx, "book removed", "isbn", isbn)
	return true
}

func (l *Library) Len() int {
	return len(l.books)
}

func (l *Library) indexOf(isbn string) int {
	for i, book := range l.books {
		if book.isbn == isbn {
			return i
		}
	}
	return -1
}

func (l *Library) report(ctx context.Context, action, isbn string, outcome Outcome) Outcome {
	l.logger.InfoContext(ctx, "library "+action, "isbn", isbn, "outcome", string(outcome))
	return outcome
}
