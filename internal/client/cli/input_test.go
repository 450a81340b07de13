package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("hello\n"))
	var out bytes.Buffer

	text, err := GetSimpleText(reader, "Enter something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello", text)
	require.Contains(t, out.String(), "Enter something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no newline"))
	var out bytes.Buffer

	text, err := GetSimpleText(reader, "Enter something", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", text)
}

func TestGetSimpleText_EOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Enter something", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", pw)
	require.Contains(t, out.String(), "Enter password:")
}

func TestGetPassword_ReadError(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\n"))
	var out bytes.Buffer

	text, err := GetMultiline(reader, "Enter content", &out)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", text)
}

func TestGetMultiline_Empty(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("\n"))
	var out bytes.Buffer

	text, err := GetMultiline(reader, "Enter content", &out)
	require.NoError(t, err)
	require.Empty(t, text)
}
