package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedReader(t *testing.T) {
	var out bytes.Buffer
	r := newBufferedReader(strings.NewReader("first\r\nsecond line\n"), &out)

	line, err := r.ReadLine("A: ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = r.ReadLine("B: ")
	require.NoError(t, err)
	assert.Equal(t, "second line", line)

	_, err = r.ReadLine("C: ")
	assert.ErrorIs(t, err, ErrInputClosed)

	assert.Equal(t, "A: B: C: ", out.String())
	assert.NoError(t, r.Close())
}

func TestBufferedReader_LastLineWithoutNewline(t *testing.T) {
	r := newBufferedReader(strings.NewReader("only"), io.Discard)

	line, err := r.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "only", line)

	_, err = r.ReadLine("")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestBufferedReader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	r := newBufferedReader(strings.NewReader(long+"\nnext\n"), io.Discard)

	line, err := r.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, long, line)

	line, err = r.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}

func TestContextReader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := newContextReader(ctx, newBufferedReader(strings.NewReader("a\n"), io.Discard))

	line, err := r.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "a", line)

	cancel()
	_, err = r.ReadLine("")
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.NoError(t, r.Close())
}

func TestAlertFor(t *testing.T) {
	assert.Equal(t, "[Error] Out of range", alertFor(ErrInvalidMenuChoice).String())
	assert.Equal(t, "[Success] done", successAlert("done").String())
	assert.Equal(t, "[Info] note", infoAlert("note").String())
}

func TestRenderClientCard(t *testing.T) {
	card := renderClientCard(alice)

	assert.Equal(t, strings.Join([]string{
		"",
		"Client details",
		strings.Repeat("=", headingWidth),
		"Account number: A100",
		"Pin code: 1234",
		"Name: Alice",
		"Phone: 555-1",
		"Balance: 500",
		strings.Repeat("=", headingWidth),
	}, "\n"), card)
}
