package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("comparing/prompt")

// ArgsPromptComparator holds the dependencies needed to create a prompt
// comparator
type ArgsPromptComparator[T any] struct {
	In     io.Reader
	Out    io.Writer
	Render func(item T) string
}

// promptComparator asks a human operator to rank two elements at a time. The
// prompt is written to Out and one answer line is read from In. A pump
// goroutine owns the reader so that a pending Compare call can still be
// abandoned through its context; the goroutine exits when the input stream
// ends.
type promptComparator[T any] struct {
	out     io.Writer
	render  func(item T) string
	answers chan string
}

// NewPromptComparator creates a prompt comparator and starts its input pump
func NewPromptComparator[T any](args ArgsPromptComparator[T]) (*promptComparator[T], error) {
	if args.In == nil {
		return nil, ErrNilInputReader
	}
	if args.Out == nil {
		return nil, ErrNilOutputWriter
	}

	render := args.Render
	if render == nil {
		render = func(item T) string {
			return fmt.Sprintf("%v", item)
		}
	}

	comparator := &promptComparator[T]{
		out:     args.Out,
		render:  render,
		answers: make(chan string),
	}
	go comparator.pumpAnswers(args.In)

	return comparator, nil
}

func (comparator *promptComparator[T]) pumpAnswers(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		comparator.answers <- scanner.Text()
	}

	log.Debug("prompt comparator input stream ended", "error", scanner.Err())
	close(comparator.answers)
}

// Compare prints the two candidates and blocks until the operator answers or
// the context is done. `1` or `<` ranks the first candidate first, `2` or `>`
// ranks it last, anything else (including an explicit `=` and a plain empty
// line) counts as no preference and yields an equal verdict.
func (comparator *promptComparator[T]) Compare(ctx context.Context, a T, b T) (int, error) {
	_, err := fmt.Fprintf(comparator.out, "  1) %s\n  2) %s\nwhich goes first? [1/2/=] ", comparator.render(a), comparator.render(b))
	if err != nil {
		return 0, err
	}

	select {
	case answer, ok := <-comparator.answers:
		if !ok {
			return 0, ErrInputClosed
		}

		verdict := parseAnswer(answer)
		log.Trace("prompt comparator verdict",
			"first", comparator.render(a),
			"second", comparator.render(b),
			"answer", answer,
			"verdict", verdict,
		)

		return verdict, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func parseAnswer(answer string) int {
	switch strings.TrimSpace(answer) {
	case "1", "<":
		return -1
	case "2", ">":
		return 1
	default:
		return 0
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (comparator *promptComparator[T]) IsInterfaceNil() bool {
	return comparator == nil
}
