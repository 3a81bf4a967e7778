package harness

// Action is something the user can ask a test to do, independent of the key bound to it.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	PanUp
	PanDown
	PanLeft
	PanRight
	SwitchTarget
	Back
	Quit
)

// Input reports which actions are held during the current frame.
type Input interface {
	IsActive(a Action) bool
}

// InputState is a plain Input, used when no window is attached.
type InputState map[Action]bool

func (s InputState) IsActive(a Action) bool {
	return s[a]
}

// edge turns a held action into a single trigger per press.
type edge struct {
	held bool
}

func (e *edge) pressed(in Input, a Action) bool {
	active := in.IsActive(a)
	fired := active && !e.held
	e.held = active
	return fired
}
