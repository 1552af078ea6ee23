package editor

import "github.com/SachinthaLakshan/evite-new-edition/position"

// Phase is the stage of a pointer gesture, independent of input device.
type Phase string

const (
	PhaseDown   Phase = "down"
	PhaseMove   Phase = "move"
	PhaseUp     Phase = "up"
	PhaseLeave  Phase = "leave"
	PhaseCancel Phase = "cancel"
)

type Device string

const (
	DeviceMouse Device = "mouse"
	DeviceTouch Device = "touch"
	DevicePen   Device = "pen"
)

// Pointer is one normalized pointer event. X and Y are in the same client
// coordinate space as the container Rect. Slot is the badge under the
// pointer and is only read on PhaseDown.
type Pointer struct {
	Phase  Phase         `json:"phase"`
	Device Device        `json:"device,omitempty"`
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Slot   position.Slot `json:"slot,omitempty"`
}

// Rect is the container's bounding box in client coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Normalize converts a client point into a clamped percentage of r.
func (r Rect) Normalize(x, y float64) position.Position {
	return position.Clamp((x-r.Left)/r.Width*100, (y-r.Top)/r.Height*100)
}

type Key string

const (
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
)

// delta returns the unit direction of an arrow key.
func (k Key) delta() (dx, dy float64, ok bool) {
	switch k {
	case KeyUp:
		return 0, -1, true
	case KeyDown:
		return 0, 1, true
	case KeyLeft:
		return -1, 0, true
	case KeyRight:
		return 1, 0, true
	}
	return 0, 0, false
}

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}
