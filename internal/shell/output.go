package shell

// LineKind classifies an output line for rendering.
type LineKind int

const (
	KindInput LineKind = iota
	KindOutput
	KindError
	KindSystem
	KindBoot
)

// String returns the name of the kind.
func (k LineKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindError:
		return "error"
	case KindSystem:
		return "system"
	case KindBoot:
		return "boot"
	default:
		return "unknown"
	}
}

// OutputLine is one entry of the session output log.
// Text may span several lines. Path is the working directory at submission
// time and is only set on KindInput lines.
type OutputLine struct {
	ID   int
	Kind LineKind
	Text string
	Path string
}
