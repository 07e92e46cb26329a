package vantage

import (
	"errors"
	"fmt"
)

// Surface errors a backend may wrap or return. OutcomeFromError maps them to
// frame outcomes.
var (
	ErrSurfaceLost     = errors.New("vantage: surface lost")
	ErrSurfaceOutdated = errors.New("vantage: surface outdated")
	ErrSurfaceTimeout  = errors.New("vantage: surface timeout")
	ErrOutOfMemory     = errors.New("vantage: out of memory")
)

// ErrFatalFrame is wrapped by FrameCoordinator.Err after a fatal outcome.
var ErrFatalFrame = errors.New("vantage: fatal frame outcome")

// OutcomeKind classifies the result of one render attempt.
type OutcomeKind uint8

const (
	OutcomePresented        OutcomeKind = iota // frame reached the screen
	OutcomeNeedsReconfigure                    // surface lost or outdated; reconfigure and carry on
	OutcomeTransient                           // frame skipped (e.g. timeout); next redraw retries
	OutcomeFatal                               // unrecoverable; the host must exit
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePresented:
		return "presented"
	case OutcomeNeedsReconfigure:
		return "needs-reconfigure"
	case OutcomeTransient:
		return "transient"
	case OutcomeFatal:
		return "fatal"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", uint8(k))
	}
}

// FrameOutcome is the tagged result a Backend returns from Render.
// Reason is only meaningful for transient and fatal outcomes.
type FrameOutcome struct {
	Kind   OutcomeKind
	Reason string
}

// Presented returns a successful outcome.
func Presented() FrameOutcome { return FrameOutcome{Kind: OutcomePresented} }

// NeedsReconfigure returns an outcome asking for surface reconfiguration.
func NeedsReconfigure() FrameOutcome { return FrameOutcome{Kind: OutcomeNeedsReconfigure} }

// Transient returns a skipped-frame outcome.
func Transient(reason string) FrameOutcome {
	return FrameOutcome{Kind: OutcomeTransient, Reason: reason}
}

// Fatal returns an unrecoverable outcome.
func Fatal(reason string) FrameOutcome {
	return FrameOutcome{Kind: OutcomeFatal, Reason: reason}
}

func (o FrameOutcome) String() string {
	if o.Reason == "" {
		return o.Kind.String()
	}
	return o.Kind.String() + ": " + o.Reason
}

// OutcomeFromError maps a backend error to an outcome. Lost and outdated
// surfaces need reconfiguration, timeouts are transient, and out-of-memory
// as well as any error not listed here is fatal.
func OutcomeFromError(err error) FrameOutcome {
	switch {
	case err == nil:
		return Presented()
	case errors.Is(err, ErrSurfaceLost), errors.Is(err, ErrSurfaceOutdated):
		return NeedsReconfigure()
	case errors.Is(err, ErrSurfaceTimeout):
		return Transient(err.Error())
	default:
		return Fatal(err.Error())
	}
}
