package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptPassphrase obtains the passphrase for the encrypted store.
// VAXQ_PASSPHRASE wins (scripted use); otherwise the user is prompted on the
// terminal without echo. Piped stdin falls back to reading one line.
func promptPassphrase() (string, error) {
	if pw := os.Getenv("VAXQ_PASSPHRASE"); pw != "" {
		return pw, nil
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Passphrase: ")
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
