package internal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"golang.org/x/term"
)

// PromptForKey securely prompts for a key on the terminal. With confirm set,
// the key is asked for twice and both entries must match.
// If mask is true, input is read in raw mode with '*' echo; otherwise it uses
// the terminal's hidden input (no echo) via ReadPassword.
// Prompts go to stderr so stdout stays clean for the result.
// Errors are concise and never echo the key content.
func PromptForKey(label string, mask, confirm bool) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompt requires an interactive terminal")
	}

	read := readHidden
	if mask {
		read = readMasked
	}

	k1, err := read(fd, fmt.Sprintf("Enter %s: ", label))
	if err != nil {
		return "", err
	}
	if !confirm {
		return k1, nil
	}
	k2, err := read(fd, fmt.Sprintf("Re-enter %s: ", label))
	if err != nil {
		return "", err
	}
	if k1 != k2 {
		return "", fmt.Errorf("%s entries do not match", label)
	}
	return k1, nil
}

func readHidden(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, "\r"+prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read key")
	}
	return string(b), nil
}

// readMasked reads a line in raw mode echoing '*', restoring the terminal on
// return or on SIGINT/SIGTERM.
func readMasked(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, "\r"+prompt)

	oldState, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()

	if _, err := term.MakeRaw(fd); err != nil {
		signal.Stop(sigc)
		close(done)
		return "", fmt.Errorf("terminal not ready")
	}
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	var line maskedLine
	for {
		var b [1]byte
		n, er := os.Stdin.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := b[0]
		if ch == '\r' || ch == '\n' {
			fmt.Fprintln(os.Stderr)
			break
		}
		if ch == 0x7f || ch == '\b' { // backspace/delete
			if line.backspace() {
				fmt.Fprint(os.Stderr, "\b \b")
			}
			continue
		}
		// Ignore non-printable control characters
		if ch < 0x20 {
			continue
		}
		if line.push(ch) {
			fmt.Fprint(os.Stderr, "*")
		}
	}
	return line.String(), nil
}

// maskedLine collects raw input bytes so multi-byte UTF-8 keys survive intact.
// widths holds the byte length of each complete rune; pending counts the
// bytes of a rune still being typed.
type maskedLine struct {
	buf     []byte
	widths  []int
	pending int
}

// push appends b and reports whether it completed a rune (one '*' to echo).
func (l *maskedLine) push(b byte) bool {
	l.buf = append(l.buf, b)
	l.pending++
	if !utf8.FullRune(l.buf[len(l.buf)-l.pending:]) {
		return false
	}
	l.widths = append(l.widths, l.pending)
	l.pending = 0
	return true
}

// backspace drops a partially typed rune if there is one, otherwise the last
// complete rune. It reports whether an echoed '*' must be erased.
func (l *maskedLine) backspace() bool {
	if l.pending > 0 {
		l.buf = l.buf[:len(l.buf)-l.pending]
		l.pending = 0
		return false
	}
	if len(l.widths) == 0 {
		return false
	}
	w := l.widths[len(l.widths)-1]
	l.widths = l.widths[:len(l.widths)-1]
	l.buf = l.buf[:len(l.buf)-w]
	return true
}

func (l *maskedLine) String() string { return string(l.buf) }
