package tui

import "github.com/garrettladley/wordclock/internal/gate"

// CapabilityReporter is the part of the light gate the preview reads.
type CapabilityReporter interface {
	Capability() gate.Capability
}

type Deps struct {
	Gate CapabilityReporter
}
