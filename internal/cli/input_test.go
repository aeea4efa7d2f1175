package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userregistry/internal/logging"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  Ana  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOFAfterInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer

	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(in, "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("hunter2"), nil }

	var out bytes.Buffer
	pw, err := GetPassword("Enter a password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), pw)
	assert.NotContains(t, out.String(), "hunter2")
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	var out bytes.Buffer
	_, err := GetPassword("Enter a password", &out)
	assert.Error(t, err)
}

func TestApp_PasswordFromTerminal(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("hidden"), nil }

	var out bytes.Buffer
	a := NewApp(nil, logging.Nop(), strings.NewReader("visible\n"), &out)
	a.interactive = true

	pw, err := a.password("Enter a password")
	require.NoError(t, err)
	assert.Equal(t, "hidden", string(pw))
}

func TestApp_PasswordFromPipe(t *testing.T) {
	var out bytes.Buffer
	a := NewApp(nil, logging.Nop(), strings.NewReader("visible\n"), &out)
	require.False(t, a.interactive)

	pw, err := a.password("Enter a password")
	require.NoError(t, err)
	assert.Equal(t, "visible", string(pw))
}

func TestGetRawText_KeepsPadding(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  my secret  \r\n  tail  "))
	var out bytes.Buffer

	got, err := GetRawText(in, "Password?", &out)
	require.NoError(t, err)
	assert.Equal(t, "  my secret  ", got)

	got, err = GetRawText(in, "Password?", &out)
	require.NoError(t, err)
	assert.Equal(t, "  tail  ", got)

	_, err = GetRawText(in, "Password?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestApp_PasswordFromPipeKeepsPadding(t *testing.T) {
	var out bytes.Buffer
	a := NewApp(nil, logging.Nop(), strings.NewReader("  my secret  \n"), &out)

	pw, err := a.password("Enter a password")
	require.NoError(t, err)
	assert.Equal(t, "  my secret  ", string(pw))
}
