package drill

// String returns the wire name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePrompting:
		return "prompting"
	case PhaseRevealed:
		return "revealed"
	case PhaseJustCompleted:
		return "just-completed"
	case PhaseComplete:
		return "complete"
	default:
		return "idle"
	}
}
