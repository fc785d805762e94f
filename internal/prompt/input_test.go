package prompt

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestLineSource(t *testing.T) {
	t.Run("yields one line per call", func(t *testing.T) {
		var fatalErr error
		in := LineSource(strings.NewReader("create\r\nhello.txt\n\nlast"), func(err error) { fatalErr = err })

		assert.Equal(t, "create", in())
		assert.Equal(t, "hello.txt", in())
		assert.Equal(t, "", in())
		assert.Equal(t, "last", in())
		assert.NoError(t, fatalErr)
	})

	t.Run("lines longer than 64 KiB are returned whole", func(t *testing.T) {
		long := strings.Repeat("a", 70*1024)
		var fatalErr error
		in := LineSource(strings.NewReader(long+"\nnext\n"), func(err error) { fatalErr = err })

		got := in()
		assert.Len(t, got, len(long))
		assert.Equal(t, long, got)
		assert.Equal(t, "next", in())
		assert.NoError(t, fatalErr)
	})

	t.Run("EOF is fatal", func(t *testing.T) {
		var fatalErr error
		in := LineSource(strings.NewReader(""), func(err error) { fatalErr = err })

		assert.PanicsWithError(t, "prompt: input source failed: EOF", func() { in() })
		require.Error(t, fatalErr)
		assert.True(t, errors.Is(fatalErr, io.EOF))
	})

	t.Run("read error is fatal", func(t *testing.T) {
		readErr := errors.New("stdin closed")
		var fatalErr error
		in := LineSource(failingReader{err: readErr}, func(err error) { fatalErr = err })

		assert.Panics(t, func() { in() })
		assert.ErrorIs(t, fatalErr, readErr)
	})

	t.Run("fatal that returns does not spin the loop", func(t *testing.T) {
		calls := 0
		in := LineSource(strings.NewReader(""), func(error) { calls++ })

		assert.Panics(t, func() {
			_, _ = Unbounded(nil).Prompt(NewFreeText("File name"), in)
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("drives the loop", func(t *testing.T) {
		in := LineSource(strings.NewReader("foo\ncreate\n"), func(err error) {
			t.Fatalf("unexpected fatal: %v", err)
		})
		got, err := Unbounded(nil).Prompt(NewChoice("Action", "create", "edit"), in)
		require.NoError(t, err)
		assert.Equal(t, "create", got)
	})
}

func TestLines(t *testing.T) {
	in := Lines("a", "b")
	assert.Equal(t, "a", in())
	assert.Equal(t, "b", in())
	assert.Panics(t, func() { in() })
}
