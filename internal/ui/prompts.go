package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/mydehq/gamedesc/internal/review"
)

// ErrUserSkip is returned when the operator dismisses a prompt with esc.
var ErrUserSkip = errors.New("user skipped entry")

// HandleAbort maps huh.ErrUserAborted to ErrUserSkip for esc and passes
// ctrl+c through as the original abort.
func HandleAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) && interceptedKey == "esc" {
		return ErrUserSkip
	}
	return err
}

// NewPrompter returns the interactive form prompter when both streams are
// terminals and a line-based prompter otherwise.
func NewPrompter(in, out *os.File) review.Prompter {
	if isTerminal(in) && isTerminal(out) {
		return &FormPrompter{}
	}
	return NewTextPrompter(in, out)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// FormPrompter asks with a huh select form.
type FormPrompter struct{}

// Ask implements review.Prompter.
func (p *FormPrompter) Ask(ctx context.Context, q review.Prompt) (review.Decision, error) {
	choice := review.Accept
	err := RunForm(ctx, huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("%s  %d/%d", q.Platform, q.Position, q.Total)).
				Description(describe(q)),
			huh.NewSelect[review.Decision]().
				Title("Unhide this entry?").
				Options(
					huh.NewOption("Unhide", review.Accept),
					huh.NewOption("Keep hidden", review.Reject),
					huh.NewOption("Cancel review", review.Cancel),
				).
				Value(&choice),
		),
	).WithTheme(Theme()).WithKeyMap(KeyMap()))

	if err != nil {
		if ctx.Err() != nil {
			return review.Cancel, nil
		}
		err = HandleAbort(err)
		switch {
		case errors.Is(err, ErrUserSkip):
			return review.Reject, nil
		case errors.Is(err, huh.ErrUserAborted):
			return review.Cancel, nil
		}
		return review.Cancel, err
	}
	return choice, nil
}

func describe(q review.Prompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s", StyleCommand.Render(q.Name), StylePath.Render(q.Path))
	if q.Volumes > 1 {
		fmt.Fprintf(&b, "\n%s", StyleDim.Render(fmt.Sprintf("%d volumes", q.Volumes)))
	}
	return b.String()
}

// TextPrompter asks on a plain line-oriented stream.
type TextPrompter struct {
	in    *bufio.Reader
	out   io.Writer
	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// NewTextPrompter creates a prompter reading answers from in.
func NewTextPrompter(in io.Reader, out io.Writer) *TextPrompter {
	return &TextPrompter{in: bufio.NewReader(in), out: out, lines: make(chan lineResult)}
}

// readLines feeds input lines to the prompter until the reader fails.
func (p *TextPrompter) readLines() {
	for {
		text, err := p.in.ReadString('\n')
		p.lines <- lineResult{text: text, err: err}
		if err != nil {
			close(p.lines)
			return
		}
	}
}

// Ask implements review.Prompter. End of input and a cancelled context both
// cancel the review; a line typed after cancellation is never applied.
func (p *TextPrompter) Ask(ctx context.Context, q review.Prompt) (review.Decision, error) {
	p.once.Do(func() { go p.readLines() })

	fmt.Fprintf(p.out, "\n[%s %d/%d] %s\n  %s\n", q.Platform, q.Position, q.Total, q.Name, q.Path)
	if q.Volumes > 1 {
		fmt.Fprintf(p.out, "  %d volumes\n", q.Volumes)
	}

	for {
		if ctx.Err() != nil {
			return review.Cancel, nil
		}
		fmt.Fprint(p.out, "Unhide? [y]es / [n]o / [c]ancel: ")

		var line lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return review.Cancel, nil
		case r, ok := <-p.lines:
			if !ok {
				fmt.Fprintln(p.out)
				return review.Cancel, nil
			}
			line = r
		}
		if line.err != nil && !errors.Is(line.err, io.EOF) {
			return review.Cancel, line.err
		}

		switch strings.ToLower(strings.TrimSpace(line.text)) {
		case "y", "yes":
			return review.Accept, nil
		case "n", "no":
			return review.Reject, nil
		case "c", "cancel":
			return review.Cancel, nil
		}

		if line.err != nil {
			fmt.Fprintln(p.out)
			return review.Cancel, nil
		}
		fmt.Fprintln(p.out, "Please answer y, n or c.")
	}
}
