package marmoset

import (
	"unicode/utf8"
)

// CommandKind tags an editing command produced from host input.
type CommandKind int

const (
	CmdInsertRune CommandKind = iota
	CmdBackspace
	CmdDeleteForward
	CmdMoveLeft
	CmdMoveRight
	CmdWordLeft
	CmdWordRight
	CmdHome
	CmdEnd
	CmdKillLine
	CmdKillToEnd
	CmdHistoryPrev
	CmdHistoryNext
	CmdSubmit
	CmdInterrupt
	CmdEOF
	CmdClearScreen
	CmdPassthrough
)

// Command is one editing command. Rune is set for CmdInsertRune; Raw
// carries the original bytes for CmdPassthrough.
type Command struct {
	Kind CommandKind
	Rune rune
	Raw  []byte
}

// Translate classifies one host data chunk (a key event or paste payload)
// into editing commands. Classification depends only on the chunk's bytes:
// the same chunk always yields the same commands. Unrecognized control and
// escape sequences become CmdPassthrough and are forwarded to the terminal
// for display-only effect; they never touch the line buffer.
func Translate(data []byte) []Command {
	var cmds []Command

	i := 0
	for i < len(data) {
		b := data[i]

		// ESC starts a CSI sequence or an Alt chord; either way it is
		// consumed as one unit so a modifier chord never leaks a stray
		// printable into the buffer.
		if b == 0x1b && i+1 < len(data) {
			if data[i+1] == '[' {
				cmd, consumed := translateEscape(data[i:])
				cmds = append(cmds, cmd)
				i += consumed
				continue
			}
			switch data[i+1] {
			case 'b': // Alt+B
				cmds = append(cmds, Command{Kind: CmdWordLeft})
			case 'f': // Alt+F
				cmds = append(cmds, Command{Kind: CmdWordRight})
			default:
				cmds = append(cmds, Command{Kind: CmdPassthrough, Raw: data[i : i+2]})
			}
			i += 2
			continue
		}

		switch {
		case b == 0x03: // Ctrl+C
			cmds = append(cmds, Command{Kind: CmdInterrupt})
			i++
		case b == 0x04: // Ctrl+D
			cmds = append(cmds, Command{Kind: CmdEOF})
			i++
		case b == 0x7f || b == 0x08: // Backspace
			cmds = append(cmds, Command{Kind: CmdBackspace})
			i++
		case b == '\r': // Enter; swallow the LF of a pasted CRLF
			cmds = append(cmds, Command{Kind: CmdSubmit})
			i++
			if i < len(data) && data[i] == '\n' {
				i++
			}
		case b == '\n':
			cmds = append(cmds, Command{Kind: CmdSubmit})
			i++
		case b == 0x01: // Ctrl+A
			cmds = append(cmds, Command{Kind: CmdHome})
			i++
		case b == 0x05: // Ctrl+E
			cmds = append(cmds, Command{Kind: CmdEnd})
			i++
		case b == 0x15: // Ctrl+U
			cmds = append(cmds, Command{Kind: CmdKillLine})
			i++
		case b == 0x0b: // Ctrl+K
			cmds = append(cmds, Command{Kind: CmdKillToEnd})
			i++
		case b == 0x0c: // Ctrl+L
			cmds = append(cmds, Command{Kind: CmdClearScreen})
			i++
		case b >= 0x20 && b < 0x7f: // ASCII printable
			cmds = append(cmds, Command{Kind: CmdInsertRune, Rune: rune(b)})
			i++
		case b >= 0xc0: // UTF-8 start byte; collect the full character
			end := i + 1
			for end < len(data) && data[end] >= 0x80 && data[end] < 0xc0 {
				end++
			}
			r, _ := utf8.DecodeRune(data[i:end])
			if r != utf8.RuneError {
				cmds = append(cmds, Command{Kind: CmdInsertRune, Rune: r})
			}
			i = end
		default:
			// Unrecognized control byte (bell, tab, bare ESC, ...)
			cmds = append(cmds, Command{Kind: CmdPassthrough, Raw: data[i : i+1]})
			i++
		}
	}

	return cmds
}

// translateEscape classifies a CSI sequence starting at data[0] == ESC,
// data[1] == '['. Returns the command and the number of bytes consumed.
func translateEscape(data []byte) (Command, int) {
	if len(data) > 2 {
		switch data[2] {
		case 'A':
			return Command{Kind: CmdHistoryPrev}, 3
		case 'B':
			return Command{Kind: CmdHistoryNext}, 3
		case 'C':
			return Command{Kind: CmdMoveRight}, 3
		case 'D':
			return Command{Kind: CmdMoveLeft}, 3
		case 'H':
			return Command{Kind: CmdHome}, 3
		case 'F':
			return Command{Kind: CmdEnd}, 3
		case '1':
			if len(data) > 3 && data[3] == '~' {
				return Command{Kind: CmdHome}, 4
			}
			// Modified arrows: ESC [ 1 ; <mod> C/D with Alt (3) or
			// Ctrl (5) move by words.
			if len(data) > 5 && data[3] == ';' && (data[4] == '3' || data[4] == '5') {
				switch data[5] {
				case 'C':
					return Command{Kind: CmdWordRight}, 6
				case 'D':
					return Command{Kind: CmdWordLeft}, 6
				}
			}
		case '3':
			if len(data) > 3 && data[3] == '~' {
				return Command{Kind: CmdDeleteForward}, 4
			}
		case '4':
			if len(data) > 3 && data[3] == '~' {
				return Command{Kind: CmdEnd}, 4
			}
		}
	}

	// Unknown sequence: consume through the final byte (0x40-0x7e) and
	// pass it along verbatim.
	end := 2
	for end < len(data) && data[end] >= 0x20 && data[end] < 0x40 {
		end++
	}
	if end < len(data) {
		end++
	}
	return Command{Kind: CmdPassthrough, Raw: data[:end]}, end
}
