package car

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidCommand is returned for a script token that is not a command.
var ErrInvalidCommand = errors.New("invalid command")

// MaxRepeat bounds the count of a single L or R token.
const MaxRepeat = 100

// Op is the kind of a driving command.
type Op int

const (
	OpLeft Op = iota
	OpRight
	OpForward
	OpBack
)

func (o Op) String() string {
	switch o {
	case OpLeft:
		return "left"
	case OpRight:
		return "right"
	case OpForward:
		return "forward"
	case OpBack:
		return "back"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Command is a single steer or drive instruction. Distance is only used by
// OpForward and OpBack and is always non-negative.
type Command struct {
	Op       Op
	Distance float64
}

func (c Command) String() string {
	switch c.Op {
	case OpForward, OpBack:
		return fmt.Sprintf("%s %g", c.Op, c.Distance)
	default:
		return c.Op.String()
	}
}

// Left, Right, Forward and Back are shorthands for building scripts in code.
func Left() Command { return Command{Op: OpLeft} }
func Right() Command { return Command{Op: OpRight} }
func Forward(distance float64) Command { return Command{Op: OpForward, Distance: distance} }
func Back(distance float64) Command { return Command{Op: OpBack, Distance: distance} }

// ParseCommands parses a compact script such as "L L F2 B0.5 R3".
//
// Tokens are separated by spaces or commas. L and R take an optional repeat
// count up to MaxRepeat, F and B take an optional finite distance in metres
// (default 1).
func ParseCommands(script string) ([]Command, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	var cmds []Command
	for _, tok := range fields {
		op, arg := strings.ToUpper(tok[:1]), tok[1:]
		switch op {
		case "L", "R":
			n := 1
			if arg != "" {
				v, err := strconv.Atoi(arg)
				if err != nil || v < 1 || v > MaxRepeat {
					return nil, fmt.Errorf("failed to parse %q: %w", tok, ErrInvalidCommand)
				}
				n = v
			}
			cmd := Left()
			if op == "R" {
				cmd = Right()
			}
			for i := 0; i < n; i++ {
				cmds = append(cmds, cmd)
			}
		case "F", "B":
			d := 1.0
			if arg != "" {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("failed to parse %q: %w", tok, ErrInvalidCommand)
				}
				d = v
			}
			if op == "F" {
				cmds = append(cmds, Forward(d))
			} else {
				cmds = append(cmds, Back(d))
			}
		default:
			return nil, fmt.Errorf("failed to parse %q: %w", tok, ErrInvalidCommand)
		}
	}
	return cmds, nil
}

// Apply runs cmds in order and stops at the first failure.
func (c *Car[F]) Apply(cmds ...Command) error {
	for i, cmd := range cmds {
		var err error
		switch cmd.Op {
		case OpLeft:
			err = c.LeftSteer()
		case OpRight:
			err = c.RightSteer()
		case OpForward:
			c.Forward(F(cmd.Distance))
		case OpBack:
			c.Forward(-F(cmd.Distance))
		default:
			err = fmt.Errorf("failed to apply %v: %w", cmd, ErrInvalidCommand)
		}
		if err != nil {
			return fmt.Errorf("command %d (%v): %w", i, cmd, err)
		}
	}
	return nil
}
