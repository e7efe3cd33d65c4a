package core

// Direction is a joystick deflection sample.
type Direction int

const (
	DirNone   Direction = iota // No reading
	DirN                       // Up
	DirS                       // Down
	DirE                       // Right
	DirW                       // Left
	DirCenter                  // Stick at rest
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirN:
		return "N"
	case DirS:
		return "S"
	case DirE:
		return "E"
	case DirW:
		return "W"
	case DirCenter:
		return "Center"
	default:
		return "Unknown"
	}
}

// Neutral reports whether the stick is not deflected.
func (d Direction) Neutral() bool {
	return d == DirNone || d == DirCenter
}

// Input is the polled joystick and button hardware.
// Every method returns the current level; there are no queued events.
type Input interface {
	// PollDirection samples the joystick.
	PollDirection() Direction

	// ActionPressed samples the joystick button (fire/jump).
	ActionPressed() bool

	// ReadSelect returns the raw select line. The line is active-low:
	// 0 means pressed, 1 means released.
	ReadSelect() int
}

// Sample is a fixed Input reading, used by scripted and test inputs.
type Sample struct {
	Dir    Direction
	Action bool
	Select bool
}

// PollDirection implements Input.
func (s Sample) PollDirection() Direction { return s.Dir }

// ActionPressed implements Input.
func (s Sample) ActionPressed() bool { return s.Action }

// ReadSelect implements Input.
func (s Sample) ReadSelect() int {
	if s.Select {
		return 0
	}
	return 1
}

// InputFrame is one poll of the hardware with edges already derived.
// Modes consume edges instead of spinning on a button level.
type InputFrame struct {
	Dir Direction

	Action         bool // Button held this poll
	ActionPressed  bool // Released at the previous poll, held now
	ActionReleased bool // Held at the previous poll, released now

	Select         bool // Select held this poll
	SelectPressed  bool
	SelectReleased bool
	SelectHeld     int // Consecutive polls the select line has been held
}

// Poller samples an Input once per frame and derives press/release edges.
type Poller struct {
	prevAction bool
	prevSelect bool
	held       int
}

// Poll samples in and returns the frame for this poll.
func (p *Poller) Poll(in Input) InputFrame {
	action := in.ActionPressed()
	sel := in.ReadSelect() == 0

	if sel {
		p.held++
	} else {
		p.held = 0
	}

	f := InputFrame{
		Dir:            in.PollDirection(),
		Action:         action,
		ActionPressed:  action && !p.prevAction,
		ActionReleased: !action && p.prevAction,
		Select:         sel,
		SelectPressed:  sel && !p.prevSelect,
		SelectReleased: !sel && p.prevSelect,
		SelectHeld:     p.held,
	}

	p.prevAction = action
	p.prevSelect = sel
	return f
}

// Reset forgets previous levels, so a line held across a reset reads as a fresh press.
func (p *Poller) Reset() {
	*p = Poller{}
}
