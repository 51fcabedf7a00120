package nav

// Package nav models the in-app navigation history and the hardware
// back-button state machine. It is pure; platform side effects (process
// exit) are performed by callers.

// BackState is the state of the back-button machine.
type BackState int

const (
	// StateAtRoot means the history holds at most one entry; a back event
	// opens the exit confirmation instead of navigating.
	StateAtRoot BackState = iota
	// StateNormal means there is in-app history to navigate back through.
	StateNormal
	// StateExitConfirm means the exit confirmation prompt is open.
	StateExitConfirm
	// StateTerminated means the user confirmed exit. Terminal.
	StateTerminated
)

// BackResult describes the outcome of a back event.
type BackResult struct {
	// Route is the in-app backward navigation target, empty when the event
	// did not navigate.
	Route string
	// ExitPrompt is true when the event opened the exit confirmation.
	ExitPrompt bool
}

// Stack is an ordered sequence of visited route identifiers. It is created
// at app mount, mutated per navigation event, and discarded at teardown.
// Not safe for concurrent use; callers serialize access.
type Stack struct {
	routes []string
	state  BackState
}

// NewStack returns an empty stack in the at-root state.
func NewStack() *Stack {
	return &Stack{state: StateAtRoot}
}

// Visit records a forward navigation. Visiting while the exit prompt is open
// dismisses it. Visits after termination are ignored.
func (s *Stack) Visit(route string) {
	if s.state == StateTerminated {
		return
	}
	if s.state == StateExitConfirm {
		s.state = StateAtRoot
	}
	// Re-visiting the current route (e.g. a refresh) must not grow history.
	if n := len(s.routes); n > 0 && s.routes[n-1] == route {
		return
	}
	s.routes = append(s.routes, route)
	s.recompute()
}

// Back applies a hardware back event.
// In StateNormal it pops the stack and navigates to the new top.
// In StateAtRoot it opens the exit confirmation.
// In StateExitConfirm and StateTerminated it is a no-op.
func (s *Stack) Back() BackResult {
	switch s.state {
	case StateNormal:
		s.routes = s.routes[:len(s.routes)-1]
		s.recompute()
		return BackResult{Route: s.routes[len(s.routes)-1]}
	case StateAtRoot:
		s.state = StateExitConfirm
		return BackResult{ExitPrompt: true}
	default:
		return BackResult{}
	}
}

// CancelExit dismisses the exit confirmation and returns to the at-root
// state. No-op in any other state.
func (s *Stack) CancelExit() {
	if s.state == StateExitConfirm {
		s.state = StateAtRoot
	}
}

// ConfirmExit acknowledges the exit confirmation. It returns true exactly
// once, when the machine transitions to the terminal state; callers perform
// the platform exit on a true return.
func (s *Stack) ConfirmExit() bool {
	if s.state != StateExitConfirm {
		return false
	}
	s.state = StateTerminated
	return true
}

// Depth returns the number of recorded routes.
func (s *Stack) Depth() int { return len(s.routes) }

// State returns the current back-button state.
func (s *Stack) State() BackState { return s.state }

// Current returns the route at the top of the stack, or empty.
func (s *Stack) Current() string {
	if len(s.routes) == 0 {
		return ""
	}
	return s.routes[len(s.routes)-1]
}

func (s *Stack) recompute() {
	if len(s.routes) > 1 {
		s.state = StateNormal
	} else {
		s.state = StateAtRoot
	}
}
