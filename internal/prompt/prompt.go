package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/game/field"
)

const GuessPrompt = "Make a guess eg.. A1, B2, etc..  "

type line struct {
	text string
	err  error
}

// Interactive player reading one guess per line.
//
// Input is scanned on a separate goroutine, so a pending read can be
// abandoned through the context.
type Player struct {
	out   io.Writer
	lines <-chan line
}

var _ game.Player = (*Player)(nil)

func NewPlayer(in io.Reader, out io.Writer) *Player {
	lines := make(chan line)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- line{text: scanner.Text()}
		}

		if err := scanner.Err(); err != nil {
			lines <- line{err: fmt.Errorf("failed to read input: %w", err)}
		}
	}()

	return &Player{
		out:   out,
		lines: lines,
	}
}

func (p *Player) readLine(ctx context.Context) (string, error) {
	select {
	case l, ok := <-p.lines:
		if !ok {
			return "", game.ErrInputClosed
		}
		return l.text, l.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *Player) NextGuess(ctx context.Context) (string, error) {
	fmt.Fprint(p.out, GuessPrompt)
	return p.readLine(ctx)
}

func parseSizeChoice(choice string) (int, bool) {
	choice = strings.TrimSpace(choice)

	for i, size := range field.SupportedSizes {
		if choice == strconv.Itoa(i+1) || choice == fmt.Sprintf("%dx%d", size, size) {
			return size, true
		}
	}

	return 0, false
}

// Shows the board size menu until a valid choice is made. Accepts
// either the item number or the size as shown, e.g. "2" or "5x5".
func (p *Player) SelectSize(ctx context.Context) (int, error) {
	fmt.Fprintln(p.out, "Choose a Board Size")
	for i, size := range field.SupportedSizes {
		fmt.Fprintf(p.out, "  %d) %dx%d\n", i+1, size, size)
	}

	for {
		fmt.Fprint(p.out, "> ")

		choice, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}

		if size, ok := parseSizeChoice(choice); ok {
			return size, nil
		}

		fmt.Fprintf(p.out, "Invalid choice %q.\n", choice)
	}
}
