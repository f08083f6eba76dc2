// ABOUTME: Spinner animation for the status line while an invocation runs
// ABOUTME: Cycles through braille frames; the owner calls Tick on a timer

package component

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a frame counter. It is driven by the control loop only.
type Spinner struct {
	frames []string
	frame  int
}

// NewSpinner creates a spinner on its first frame.
func NewSpinner() *Spinner {
	return &Spinner{frames: defaultFrames}
}

// Tick advances to the next frame.
func (s *Spinner) Tick() {
	s.frame = (s.frame + 1) % len(s.frames)
}

// Reset returns to the first frame.
func (s *Spinner) Reset() {
	s.frame = 0
}

// Frame returns the current frame.
func (s *Spinner) Frame() string {
	return s.frames[s.frame]
}
