package config

import (
	"fmt"
	"strings"
)

// PlatformKind selects the host platform capability set at startup.
// The hardware back-button machine is only wired on native platforms; on
// web the listener registration is a no-op.
type PlatformKind string

const (
	// PlatformWeb has no native back-button capability.
	PlatformWeb PlatformKind = "web"
	// PlatformNative exposes the hardware back button and process exit.
	PlatformNative PlatformKind = "native"
)

// UnmarshalText implements encoding.TextUnmarshaler for PlatformKind.
func (p *PlatformKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "web", "native":
		*p = PlatformKind(v)
		return nil
	default:
		return fmt.Errorf("invalid PlatformKind: %q (valid options: web, native)", v)
	}
}

// PlatformConfig groups platform capability configuration.
type PlatformConfig struct {
	Kind PlatformKind `env:"PLATFORM" envDefault:"web"`
}
