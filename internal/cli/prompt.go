package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/casey/apptrack/internal/domain"
	"github.com/casey/apptrack/internal/presenter"
)

// Prompter runs blocking line-based prompts against a terminal. Reader and
// writer are injectable so prompt flows can be tested with canned input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and echoing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func newStdinPrompter() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

// requireInteractive rejects prompt-driven commands when stdin is not a
// terminal, so a stray script invocation fails loudly instead of hanging.
func requireInteractive() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("this command is interactive and requires a terminal")
	}
	return nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Input prompts for a value. When def is non-empty it is shown in brackets
// and returned on blank input.
func (p *Prompter) Input(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	value, err := p.readLine()
	if err != nil {
		return "", err
	}
	if value == "" {
		return def, nil
	}
	return value, nil
}

// Required prompts until a non-empty value is entered.
func (p *Prompter) Required(label string) (string, error) {
	pr := presenter.New(p.out)
	for {
		value, err := p.Input(label, "")
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		pr.Error("This field is required!")
	}
}

// statusMenu prints the numbered status choices.
func (p *Prompter) statusMenu() {
	for i, s := range domain.Statuses() {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, s.Title())
	}
}

// ChooseStatus runs the status menu for the add flow: blank or an
// unrecognized choice falls back to development.
func (p *Prompter) ChooseStatus() (domain.Status, error) {
	fmt.Fprintln(p.out, "\nStatus:")
	p.statusMenu()
	choice, err := p.Input("Choose status [1]", "1")
	if err != nil {
		return "", err
	}
	return statusByChoice(choice, domain.StatusDevelopment), nil
}

// ChooseStatusDefault runs the status menu for the edit flow: blank or an
// unrecognized choice keeps the current status.
func (p *Prompter) ChooseStatusDefault(current domain.Status) (domain.Status, error) {
	fmt.Fprintf(p.out, "\nStatus (current: %s):\n", current)
	p.statusMenu()
	choice, err := p.Input("Choose status", "")
	if err != nil {
		return "", err
	}
	if choice == "" {
		return current, nil
	}
	return statusByChoice(choice, current), nil
}

func statusByChoice(choice string, fallback domain.Status) domain.Status {
	statuses := domain.Statuses()
	for i, s := range statuses {
		if choice == fmt.Sprintf("%d", i+1) {
			return s
		}
	}
	return fallback
}

// URLPrompts collects the four environment URL slots, pre-filled from
// current. Entering "-" clears a slot that has a value; cleared or skipped
// slots come back empty and are never stored.
func (p *Prompter) URLPrompts(current map[domain.Environment]string) (map[domain.Environment]string, error) {
	urls := map[domain.Environment]string{}
	for _, env := range domain.Environments() {
		value, err := p.Input("  "+env.Title()+" URL", current[env])
		if err != nil {
			return nil, err
		}
		if value == "-" {
			value = ""
		}
		urls[env] = value
	}
	return urls, nil
}
