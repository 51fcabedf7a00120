package service

import (
	"log/slog"
	"sync"

	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/nav"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/platform"
)

// NavigationService tracks one navigation stack per session and applies
// back-button semantics on top of it. The platform exit hook runs at most
// once per stack, on a confirmed exit.
type NavigationService struct {
	platform platform.Platform
	logger   *slog.Logger

	mu     sync.Mutex
	stacks map[string]*nav.Stack
}

// NewNavigationService constructs a NavigationService for the given host
// platform.
func NewNavigationService(p platform.Platform, logger *slog.Logger) *NavigationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NavigationService{
		platform: p,
		logger:   logger,
		stacks:   make(map[string]*nav.Stack),
	}
}

// Visit records a forward navigation for the session.
func (n *NavigationService) Visit(sessionID, route string) {
	if sessionID == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack(sessionID).Visit(route)
}

// Back applies a hardware back event for the session.
func (n *NavigationService) Back(sessionID string) nav.BackResult {
	if sessionID == "" {
		return nav.BackResult{}
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack(sessionID).Back()
}

// CancelExit dismisses the session's exit confirmation.
func (n *NavigationService) CancelExit(sessionID string) {
	if sessionID == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack(sessionID).CancelExit()
}

// ConfirmExit acknowledges the exit confirmation. On the transition to the
// terminal state it invokes the platform exit hook; on a web host the
// confirmation is acknowledged but nothing terminates.
func (n *NavigationService) ConfirmExit(sessionID string) (exited bool, err error) {
	if sessionID == "" {
		return false, nil
	}
	n.mu.Lock()
	confirmed := n.stack(sessionID).ConfirmExit()
	n.mu.Unlock()

	if !confirmed {
		return false, nil
	}
	if !n.platform.CanExit() {
		n.logger.Debug("exit confirmed on non-exiting platform", "platform", n.platform.Name())
		return false, nil
	}
	if err := n.platform.Exit(); err != nil {
		return false, err
	}
	return true, nil
}

// Current returns the route at the top of the session's stack.
func (n *NavigationService) Current(sessionID string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if s, ok := n.stacks[sessionID]; ok {
		return s.Current()
	}
	return ""
}

// State returns the session's back-button state.
func (n *NavigationService) State(sessionID string) nav.BackState {
	n.mu.Lock()
	defer n.mu.Unlock()
	if s, ok := n.stacks[sessionID]; ok {
		return s.State()
	}
	return nav.StateAtRoot
}

// Depth returns the session's history depth.
func (n *NavigationService) Depth(sessionID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if s, ok := n.stacks[sessionID]; ok {
		return s.Depth()
	}
	return 0
}

// Drop discards the session's stack. Called when the session ends; history
// never survives a session.
func (n *NavigationService) Drop(sessionID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.stacks, sessionID)
}

// stack returns the session's stack, creating it on first use.
// Callers hold n.mu.
func (n *NavigationService) stack(sessionID string) *nav.Stack {
	s, ok := n.stacks[sessionID]
	if !ok {
		s = nav.NewStack()
		n.stacks[sessionID] = s
	}
	return s
}
