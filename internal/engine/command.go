package engine

import "github.com/san-kum/sortviz/internal/experiment"

type Op int

const (
	OpNone Op = iota
	OpRun
	OpShuffle
	OpRedraw
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpRun:
		return "run"
	case OpShuffle:
		return "shuffle"
	case OpRedraw:
		return "redraw"
	case OpClose:
		return "close"
	}
	return "none"
}

type Command struct {
	Op Op
	// Algorithm is set for OpRun.
	Algorithm string
}

// Key names shared by the frontends.
const (
	KeyShuffle = "space"
	KeyRedraw  = "enter"
	KeyClose   = "esc"
)

// CommandForKey translates a key name into a command. Number keys select
// algorithms through the registry; unknown keys yield OpNone.
func CommandForKey(r *experiment.Registry, key string) Command {
	switch key {
	case KeyShuffle:
		return Command{Op: OpShuffle}
	case KeyRedraw:
		return Command{Op: OpRedraw}
	case KeyClose:
		return Command{Op: OpClose}
	}
	if name, ok := r.ForKey(key); ok {
		return Command{Op: OpRun, Algorithm: name}
	}
	return Command{}
}
