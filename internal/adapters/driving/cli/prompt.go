package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// errNoInput is returned when input ends before a prompt is answered.
var errNoInput = errors.New("no input")

// readLine reads one line and trims surrounding whitespace.
// A final line without a newline is still returned.
func readLine(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errNoInput
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// prompt prints label and returns the trimmed answer.
func prompt(cmd *cobra.Command, reader *bufio.Reader, label string) (string, error) {
	cmd.Print(label)
	return readLine(reader)
}

// promptUntil asks until parse accepts the answer, printing invalid after
// each rejection. Only running out of input ends the loop early.
func promptUntil[T any](
	cmd *cobra.Command,
	reader *bufio.Reader,
	label, invalid string,
	parse func(string) (T, error),
) (T, error) {
	for {
		input, err := prompt(cmd, reader, label)
		if err != nil {
			var zero T
			return zero, err
		}
		value, err := parse(input)
		if err == nil {
			return value, nil
		}
		cmd.Println(invalid)
	}
}

// parseIndex accepts an optionally signed base-10 integer.
func parseIndex(input string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", input, err)
	}
	return value, nil
}
