package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFAfterPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "partial", got)
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer
	options := []string{"morning", "night", "both"}

	r := bufio.NewReader(strings.NewReader("2\n"))
	idx, err := GetChoice(r, "Routine", options, 0, &out)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	// Empty answer takes the default.
	r = bufio.NewReader(strings.NewReader("\n"))
	idx, err = GetChoice(r, "Routine", options, 2, &out)
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	// Out-of-range answers re-prompt until valid.
	r = bufio.NewReader(strings.NewReader("9\nzero\n1\n"))
	idx, err = GetChoice(r, "Routine", options, 0, &out)
	require.NoError(t, err)
	require.Equal(t, 0, idx)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) { return []byte("sekret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "sekret", pw)
	require.Contains(t, out.String(), "Enter password:")
}
