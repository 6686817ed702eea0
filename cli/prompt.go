// Package cli holds the interactive prompts used by tuplectl.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

var (
	ErrNotANumber  = errors.New("not a number")
	ErrBadArity    = errors.New("arity must be positive")
	ErrNoAnswer    = errors.New("no answer")
	componentNames = []string{"x", "y", "z", "w"} //nolint:gochecknoglobals
)

// Prompter asks questions on a pair of streams. The zero value uses the
// process's stdin and stdout.
//
// On a terminal every question is an interactive promptui prompt. Any other
// input (a pipe or a file) is read through one shared buffer, one answer
// per line.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser

	once  sync.Once
	lines *bufio.Reader
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.ReadCloser, out io.WriteCloser) *Prompter {
	return &Prompter{Stdin: in, Stdout: out}
}

func (p *Prompter) streams() (io.ReadCloser, io.WriteCloser) {
	in, out := p.Stdin, p.Stdout
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	return in, out
}

// lineReader returns the shared reader for non-terminal input, or nil
// when stdin is a terminal.
func (p *Prompter) lineReader() *bufio.Reader {
	p.once.Do(func() {
		in, _ := p.streams()
		if !isTerminal(in) {
			p.lines = bufio.NewReader(in)
		}
	})

	return p.lines
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// ask returns the answer to one question. isConfirm turns it into a yes/no
// question whose "no" answer is promptui.ErrAbort.
func (p *Prompter) ask(label string, validate promptui.ValidateFunc, isConfirm bool) (string, error) {
	in, out := p.streams()

	if lines := p.lineReader(); lines != nil {
		return readAnswer(lines, out, label, validate, isConfirm)
	}

	prompt := promptui.Prompt{
		Label:     label,
		Validate:  validate,
		IsConfirm: isConfirm,
		Stdin:     in,
		Stdout:    out,
	}

	return prompt.Run()
}

func readAnswer(
	lines *bufio.Reader,
	out io.Writer,
	label string,
	validate promptui.ValidateFunc,
	isConfirm bool,
) (string, error) {
	suffix := ": "
	if isConfirm {
		suffix = " [y/N]: "
	}

	if _, err := fmt.Fprint(out, label+suffix); err != nil {
		return "", err
	}

	line, err := lines.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}

		if line == "" && isConfirm {
			return "", promptui.ErrAbort
		}

		if line == "" {
			return "", fmt.Errorf("%w: %s", ErrNoAnswer, label)
		}
	}

	answer := strings.TrimSpace(line)

	if _, err := fmt.Fprintln(out, answer); err != nil {
		return "", err
	}

	if isConfirm {
		switch strings.ToLower(answer) {
		case "y", "yes":
			return answer, nil
		default:
			return "", promptui.ErrAbort
		}
	}

	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}

	return answer, nil
}

// Confirm asks a yes/no question. Anything but an explicit yes is a no.
func (p *Prompter) Confirm(label string) (bool, error) {
	_, err := p.ask(label, nil, true)
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Arity asks for a positive component count.
func (p *Prompter) Arity(label string) (int, error) {
	txt, err := p.ask(label, ValidateArity, false)
	if err != nil {
		return 0, err
	}

	return ParseArity(txt)
}

// Float asks for a single floating-point number.
func (p *Prompter) Float(label string) (float64, error) {
	txt, err := p.ask(label, ValidateFloat, false)
	if err != nil {
		return 0, err
	}

	return ParseFloat(txt)
}

// Components asks for arity numbers in turn, labelled x, y, z, w where
// possible and v4, v5... beyond that.
func (p *Prompter) Components(arity int) ([]float64, error) {
	values := make([]float64, 0, arity)

	for i := range arity {
		v, err := p.Float(ComponentLabel(i))
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}

		values = append(values, v)
	}

	return values, nil
}

// ComponentLabel names component i the way tuples print it.
func ComponentLabel(i int) string {
	if i >= 0 && i < len(componentNames) {
		return componentNames[i]
	}

	return "v" + strconv.Itoa(i)
}

func ParseFloat(s string) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	return val, nil
}

func ValidateFloat(s string) error {
	_, err := ParseFloat(s)

	return err
}

func ParseArity(s string) (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	if val <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadArity, val)
	}

	return val, nil
}

func ValidateArity(s string) error {
	_, err := ParseArity(s)

	return err
}
