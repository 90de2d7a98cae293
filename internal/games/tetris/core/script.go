package core

import (
	"fmt"
	"strings"
	"unicode"
)

// Command is a single engine input, used for scripted and replayed games.
type Command byte

const (
	CmdLeft     Command = 'L'
	CmdRight    Command = 'R'
	CmdDown     Command = 'D'
	CmdRotate   Command = 'U'
	CmdHardDrop Command = 'H'
)

// String returns the command's name.
func (c Command) String() string {
	switch c {
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdDown:
		return "down"
	case CmdRotate:
		return "rotate"
	case CmdHardDrop:
		return "hard_drop"
	default:
		return fmt.Sprintf("Command(%q)", byte(c))
	}
}

// ParseScript parses a command string such as "LLUH DDRH". Letters are
// case-insensitive and whitespace is ignored.
func ParseScript(s string) ([]Command, error) {
	cmds := make([]Command, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		c := Command(unicode.ToUpper(r))
		switch c {
		case CmdLeft, CmdRight, CmdDown, CmdRotate, CmdHardDrop:
			cmds = append(cmds, c)
		default:
			return nil, fmt.Errorf("script: unknown command %q at %d", r, i)
		}
	}
	return cmds, nil
}

// FormatScript is the inverse of ParseScript.
func FormatScript(cmds []Command) string {
	var sb strings.Builder
	sb.Grow(len(cmds))
	for _, c := range cmds {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// Apply executes one command. It reports whether the command changed the
// active piece or board; unknown commands and commands after game over
// do nothing.
func (e *Engine) Apply(c Command) bool {
	switch c {
	case CmdLeft:
		return e.MoveLeft()
	case CmdRight:
		return e.MoveRight()
	case CmdDown:
		if !e.falling() {
			return false
		}
		e.MoveDown()
		return true
	case CmdRotate:
		return e.Rotate()
	case CmdHardDrop:
		if !e.falling() {
			return false
		}
		e.HardDrop()
		return true
	default:
		return false
	}
}

// Run applies cmds in order and returns how many were executed before the
// game ended. Commands after game over are skipped.
func (e *Engine) Run(cmds []Command) int {
	for i, c := range cmds {
		if e.GameOver() {
			return i
		}
		e.Apply(c)
	}
	return len(cmds)
}
