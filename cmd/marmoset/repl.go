package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	marmoset "github.com/marmoset-lang/marmoset"
	"golang.org/x/term"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("214")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 2)

func newEvaluator() marmoset.Evaluator {
	if flagEngine == "js" {
		return marmoset.NewJSEvaluator()
	}
	return marmoset.NewMarmosetEvaluator()
}

// runREPL puts stdin into raw mode and pumps it into a session until the
// user exits. The banner is rendered outside the session because lipgloss
// emits plain \n framing, which is only safe before raw mode is entered.
func runREPL() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	if !flagQuiet {
		banner := bannerStyle.Render(fmt.Sprintf("Marmoset %s (%s engine)", version, flagEngine))
		fmt.Println(banner)
		fmt.Println("Type 'exit' or press Ctrl+D on an empty line to leave.")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	cfg := marmoset.DefaultConfig()
	cfg.Banner = "" // printed above, styled
	cfg.PrimaryPrompt = cfgPrompt
	cfg.ContinuationPrompt = cfgContinuationPrompt
	cfg.Color = !flagNoColor
	cfg.Debug = flagDebug
	cfg.ExitCommands = []string{"exit", "quit"}

	logger := marmoset.NewLogger(flagDebug)
	session := marmoset.NewSession(marmoset.NewIOWriter(os.Stdout, logger), newEvaluator(), cfg, logger)

	done := false
	session.OnExit = func() { done = true }

	os.Stdout.WriteString(cfg.PrimaryPrompt)

	// A fixed-size read can split a pasted multi-byte character; trailing
	// partial runes are carried into the next read so the session always
	// sees whole characters.
	buf := make([]byte, 256)
	var carry []byte
	for !done {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			break
		}
		chunk := append(carry, buf[:n]...)
		chunk, carry = splitPartialRune(chunk)
		if len(chunk) > 0 {
			session.HandleData(chunk)
		}
	}
	session.Detach()
	os.Stdout.WriteString("\r\n")
	return nil
}

// splitPartialRune splits off an incomplete UTF-8 sequence at the end of
// data. It returns the complete prefix and a copy of the partial tail, or
// data unchanged and nil when the tail is whole.
func splitPartialRune(data []byte) (complete, partial []byte) {
	for i := len(data) - 1; i >= 0 && i >= len(data)-4; i-- {
		b := data[i]
		if b < 0x80 {
			return data, nil
		}
		if b < 0xc0 {
			// continuation byte, keep looking for its start
			continue
		}
		need := 2
		switch {
		case b >= 0xf0:
			need = 4
		case b >= 0xe0:
			need = 3
		}
		if len(data)-i < need {
			return data[:i], append([]byte(nil), data[i:]...)
		}
		return data, nil
	}
	return data, nil
}
