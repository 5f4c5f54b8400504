package viewer

// Command is one viewer transition triggered by keyboard input or an
// explicit control.
type Command string

const (
	CommandClose            Command = "close"
	CommandPrevious         Command = "previous"
	CommandNext             Command = "next"
	CommandZoomIn           Command = "zoom_in"
	CommandZoomOut          Command = "zoom_out"
	CommandToggleFullscreen Command = "toggle_fullscreen"
	CommandToggleSlideshow  Command = "toggle_slideshow"
	CommandToggleMetadata   Command = "toggle_metadata"
	CommandRotate           Command = "rotate"
	CommandFlipHorizontal   Command = "flip_horizontal"
	CommandFlipVertical     Command = "flip_vertical"
)

// CommandForKey resolves a KeyboardEvent key name to a viewer command. Keys
// outside the binding table are reported as unhandled so the page keeps its
// default behavior for them.
func CommandForKey(key string) (Command, bool) {
	switch key {
	case "Escape":
		return CommandClose, true
	case "ArrowLeft":
		return CommandPrevious, true
	case "ArrowRight":
		return CommandNext, true
	case "+", "=":
		return CommandZoomIn, true
	case "-":
		return CommandZoomOut, true
	case "f", "F":
		return CommandToggleFullscreen, true
	case " ", "Space":
		return CommandToggleSlideshow, true
	case "i", "I":
		return CommandToggleMetadata, true
	case "r", "R":
		return CommandRotate, true
	case "h", "H":
		return CommandFlipHorizontal, true
	case "v", "V":
		return CommandFlipVertical, true
	}
	return "", false
}

// ParseCommand validates a command name coming from the API.
func ParseCommand(name string) (Command, bool) {
	switch Command(name) {
	case CommandClose, CommandPrevious, CommandNext, CommandZoomIn, CommandZoomOut,
		CommandToggleFullscreen, CommandToggleSlideshow, CommandToggleMetadata,
		CommandRotate, CommandFlipHorizontal, CommandFlipVertical:
		return Command(name), true
	}
	return "", false
}

// Apply executes one command against the session.
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CommandClose:
		s.Close()
	case CommandPrevious:
		s.Previous()
	case CommandNext:
		s.Next()
	case CommandZoomIn:
		s.ZoomIn()
	case CommandZoomOut:
		s.ZoomOut()
	case CommandToggleFullscreen:
		s.ToggleFullscreen()
	case CommandToggleSlideshow:
		s.ToggleSlideshow()
	case CommandToggleMetadata:
		s.ToggleMetadata()
	case CommandRotate:
		s.Rotate()
	case CommandFlipHorizontal:
		s.FlipHorizontal()
	case CommandFlipVertical:
		s.FlipVertical()
	}
}

// HandleKey maps a key press to its command and applies it. It reports
// whether the key was bound, so callers can suppress the browser default
// (page scroll on space) only for handled keys.
func (s *Session) HandleKey(key string) bool {
	cmd, ok := CommandForKey(key)
	if !ok {
		return false
	}
	s.Apply(cmd)
	return true
}
