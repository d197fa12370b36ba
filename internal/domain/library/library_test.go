package library

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/ballpark/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	guideISBN = "978-1491950296"
	ebookISBN = "978-1491954638"
)

func newLibrary(t *testing.T) (*Library, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	lib := New(logging.New(logging.LevelInfo, &buf))

	paper, err := NewBook("JavaScript: The Definitive Guide", "David Flanagan", guideISBN, KindPhysical)
	require.NoError(t, err)
	ebook, err := NewBook("Learning React", "Dan Abramov", ebookISBN, KindElectronic)
	require.NoError(t, err)

	require.NoError(t, lib.AddBook(context.Background(), paper))
	require.NoError(t, lib.AddBook(context.Background(), ebook))
	return lib, &buf
}

func TestNewBook_Validation(t *testing.T) {
	if _, err := NewBook("", "a", "1", KindPhysical); err == nil {
		t.Fatalf("expected error for empty title")
	}
	if _, err := NewBook("t", "a", " ", KindPhysical); err == nil {
		t.Fatalf("expected error for empty isbn")
	}
	if _, err := NewBook("t", "a", "1", Kind("scroll")); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestLibrary_PhysicalLending(t *testing.T) {
	lib, _ := newLibrary(t)
	ctx := context.Background()

	assert.Equal(t, CheckedOut, lib.CheckOut(ctx, guideISBN))
	book, ok := lib.SearchBook(guideISBN)
	require.True(t, ok)
	assert.False(t, book.Available())

	assert.Equal(t, AlreadyCheckedOut, lib.CheckOut(ctx, guideISBN))
	assert.Equal(t, Returned, lib.Return(ctx, guideISBN))
	assert.True(t, book.Available())
	assert.Equal(t, NotCheckedOut, lib.Return(ctx, guideISBN))
}

func TestLibrary_ElectronicNeverBecomesUnavailable(t *testing.T) {
	lib, _ := newLibrary(t)
	ctx := context.Background()

	assert.Equal(t, CheckedOut, lib.CheckOut(ctx, ebookISBN))
	assert.Equal(t, CheckedOut, lib.CheckOut(ctx, ebookISBN))
	book, _ := lib.SearchBook(ebookISBN)
	assert.True(t, book.Available())
	assert.Equal(t, NotCheckedOut, lib.Return(ctx, ebookISBN))
}

func TestLibrary_Download(t *testing.T) {
	lib, _ := newLibrary(t)
	ctx := context.Background()

	assert.Equal(t, Downloaded, lib.Download(ctx, ebookISBN))
	assert.Equal(t, AlreadyDownloaded, lib.Download(ctx, ebookISBN))
	assert.Equal(t, NotDownloadable, lib.Download(ctx, guideISBN))
	assert.Equal(t, NotFound, lib.Download(ctx, "123-4567890"))
}

func TestLibrary_UnknownAndRemove(t *testing.T) {
	lib, buf := newLibrary(t)
	ctx := context.Background()

	_, ok := lib.SearchBook("123-4567890")
	assert.False(t, ok)
	assert.Equal(t, NotFound, lib.CheckOut(ctx, "123-4567890"))
	assert.Equal(t, NotFound, lib.Return(ctx, "123-4567890"))

	assert.True(t, lib.RemoveBook(ctx, guideISBN))
	assert.False(t, lib.RemoveBook(ctx, guideISBN))
	assert.Equal(t, 1, lib.Len())

	if !strings.Contains(buf.String(), `"outcome":"not_found"`) {
		t.Fatalf("expected not_found outcome to be logged, got %s", buf.String())
	}
}

func TestLibrary_AddBookRequiresBook(t *testing.T) {
	lib, _ := newLibrary(t)
	require.Error(t, lib.AddBook(context.Background(), nil))
}
