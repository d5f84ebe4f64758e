package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "trims whitespace", input: "  hello  \n", expected: "hello"},
		{name: "windows newline", input: "hello\r\n", expected: "hello"},
		{name: "no trailing newline", input: "hello", expected: "hello"},
		{name: "empty line", input: "\n", expected: ""},
		{name: "no input", input: "", err: errNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readLine(bufio.NewReader(strings.NewReader(tt.input)))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		valid    bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-7", -7, true},
		{"+8", 8, true},
		{" 9 ", 9, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"0x10", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseIndex(tt.input)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPromptUntil(t *testing.T) {
	cmd := &cobra.Command{}
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	reader := bufio.NewReader(strings.NewReader("x\ny\n12\n"))

	value, err := promptUntil(cmd, reader, "> ", "again", parseIndex)

	require.NoError(t, err)
	assert.Equal(t, 12, value)
	assert.Equal(t, "> again\n> again\n> ", out.String())
}

func TestPromptUntil_EndOfInput(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))
	reader := bufio.NewReader(strings.NewReader("x\n"))

	_, err := promptUntil(cmd, reader, "> ", "again", parseIndex)

	assert.ErrorIs(t, err, errNoInput)
}
