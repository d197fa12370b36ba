package id

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var v4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestUUIDGenerator_FormatOverManyIDs(t *testing.T) {
	t.Parallel()

	gen := NewUUIDGenerator()
	for i := 0; i < 10000; i++ {
		got, err := gen.NewID()
		if err != nil {
			t.Fatalf("new id #%d: %v", i, err)
		}
		if !v4Pattern.MatchString(got) {
			t.Fatalf("id #%d has unexpected format: %q", i, got)
		}
	}
}

func TestUUIDGenerator_DeterministicSource(t *testing.T) {
	t.Parallel()

	seed := bytes.Repeat([]byte{0xff}, 16)
	first, err := NewUUIDGeneratorFromReader(bytes.NewReader(seed)).NewID()
	require.NoError(t, err)
	second, err := NewUUIDGeneratorFromReader(bytes.NewReader(seed)).NewID()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "ffffffff-ffff-4fff-bfff-ffffffffffff", first)
}

func TestUUIDGenerator_ZeroSourceKeepsVersionAndVariant(t *testing.T) {
	t.Parallel()

	got, err := NewUUIDGeneratorFromReader(bytes.NewReader(make([]byte, 16))).NewID()
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-4000-8000-000000000000", got)
}

func TestUUIDGenerator_ReaderFailure(t *testing.T) {
	t.Parallel()

	_, err := NewUUIDGeneratorFromReader(failingReader{}).NewID()
	if err == nil {
		t.Fatalf("expected error from failing source")
	}
	if !errors.Is(err, errSourceDrained) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "canonical v4", in: "3f2b8c1a-9d4e-4a6b-8c2d-1e0f9a8b7c6d", want: true},
		{name: "uppercase", in: "3F2B8C1A-9D4E-4A6B-8C2D-1E0F9A8B7C6D", want: false},
		{name: "version 1", in: "3f2b8c1a-9d4e-1a6b-8c2d-1e0f9a8b7c6d", want: false},
		{name: "bad variant", in: "3f2b8c1a-9d4e-4a6b-cc2d-1e0f9a8b7c6d", want: false},
		{name: "braced", in: "{3f2b8c1a-9d4e-4a6b-8c2d-1e0f9a8b7c6d}", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.in); got != tt.want {
				t.Fatalf("IsValid(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

var errSourceDrained = errors.New("source drained")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errSourceDrained
}
