package cmd

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var stdin = bufio.NewReader(os.Stdin)

// readSecret prompts on stderr and reads a line without echo. Piped input is
// read line by line.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		cmd.PrintErr(prompt)
		b, err := term.ReadPassword(fd)
		cmd.PrintErrln()
		if err != nil {
			return "", err
		}

		return string(b), nil
	}

	return readLine(stdin)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
