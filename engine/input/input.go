package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing for held navigation keys, in ticks
const (
	RepeatDelay    = 20
	RepeatInterval = 4
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	LeftPressed      bool
	LeftJustPressed  bool
	MiddlePressed    bool
	ScrollY          float64

	// Drag
	DragStartX, DragStartY int
	Dragging               bool
	DragThreshold          int

	// Keyboard
	KeysPressed map[ebiten.Key]bool
}

// panKeys are the held keys sampled into KeysPressed every frame
var panKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyD, ebiten.KeyLeft, ebiten.KeyRight,
	ebiten.KeyQ, ebiten.KeyE, ebiten.KeyShift,
}

func NewInputState() *InputState {
	return &InputState{
		DragThreshold: 5,
		KeysPressed:   make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftPressed = leftDown
	s.MiddlePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	// Drag tracking
	if s.LeftJustPressed {
		s.DragStartX = s.MouseX
		s.DragStartY = s.MouseY
		s.Dragging = false
	}
	if leftDown && !s.Dragging {
		dx := s.MouseX - s.DragStartX
		dy := s.MouseY - s.DragStartY
		if dx*dx+dy*dy > s.DragThreshold*s.DragThreshold {
			s.Dragging = true
		}
	}
	if !leftDown {
		s.Dragging = false
	}

	for _, k := range panKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// IsKeyRepeated is true on the first frame a key is down and then every
// RepeatInterval ticks once it has been held for RepeatDelay ticks
func (s *InputState) IsKeyRepeated(key ebiten.Key) bool {
	return Repeats(inpututil.KeyPressDuration(key))
}

// Repeats reports whether a key held for d ticks fires this tick
func Repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= RepeatDelay && (d-RepeatDelay)%RepeatInterval == 0
}

// Step returns -1, 0 or +1 for list navigation with W/S or the arrow keys,
// and -10 / +10 for page up / page down
func (s *InputState) Step() int {
	switch {
	case s.IsKeyRepeated(ebiten.KeyUp) || s.IsKeyRepeated(ebiten.KeyW):
		return -1
	case s.IsKeyRepeated(ebiten.KeyDown) || s.IsKeyRepeated(ebiten.KeyS):
		return 1
	case s.IsKeyRepeated(ebiten.KeyPageUp):
		return -10
	case s.IsKeyRepeated(ebiten.KeyPageDown):
		return 10
	}
	return 0
}

// PanX returns the horizontal pan direction from the held keys: -1 for
// A or Left, +1 for D or Right, doubled while Shift is held
func (s *InputState) PanX() float64 {
	return s.axis(s.KeysPressed[ebiten.KeyA] || s.KeysPressed[ebiten.KeyLeft],
		s.KeysPressed[ebiten.KeyD] || s.KeysPressed[ebiten.KeyRight])
}

// PanY returns the vertical pan direction: -1 for Q, +1 for E
func (s *InputState) PanY() float64 {
	return s.axis(s.KeysPressed[ebiten.KeyQ], s.KeysPressed[ebiten.KeyE])
}

func (s *InputState) axis(neg, pos bool) float64 {
	d := 0.0
	if neg {
		d--
	}
	if pos {
		d++
	}
	if s.KeysPressed[ebiten.KeyShift] {
		d *= 2
	}
	return d
}

// Clamp bounds a list index to [0, n)
func Clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
