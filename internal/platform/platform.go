package platform

// Package platform abstracts host-specific capabilities. The same
// navigation semantics run against a web host, which cannot close itself,
// and a native shell, which can.

import "errors"

// ErrExitUnsupported is returned when the host cannot terminate the app.
var ErrExitUnsupported = errors.New("platform does not support app exit")

// Platform exposes the capabilities navigation depends on.
type Platform interface {
	Name() string
	// CanExit reports whether Exit terminates the hosting app.
	CanExit() bool
	// Exit terminates the hosting app. Returns ErrExitUnsupported when
	// CanExit is false.
	Exit() error
}

// Web is the browser host. Exit requests are inert; the browser owns tab
// lifecycle.
type Web struct{}

func (Web) Name() string { return "web" }
func (Web) CanExit() bool { return false }
func (Web) Exit() error   { return ErrExitUnsupported }

// Native is a mobile shell host that can terminate the app.
type Native struct {
	// ExitFunc performs the actual termination. Required.
	ExitFunc func() error
}

func (Native) Name() string  { return "native" }
func (Native) CanExit() bool { return true }

func (n Native) Exit() error {
	if n.ExitFunc == nil {
		return errors.New("native platform has no exit hook")
	}
	return n.ExitFunc()
}
