package axisscale

import (
	"fmt"
	"sync/atomic"
)

// PlotContext is the read-only view of a host plot that the computation
// needs. Implementations report the current state and must not change it
// as a side effect; ViewportSize must already be in points.
type PlotContext interface {
	Limits(a Axis) AxisRange
	DataAspectRatio() AspectRatio
	CameraView() View
	Projection() ProjectionMode
	ScaleKind(a Axis) ScaleKind
	ViewportSize() Viewport
}

// Snapshot is a frozen copy of a plot's state. It implements PlotContext.
type Snapshot struct {
	in Input
}

// NewSnapshot wraps in as a PlotContext.
func NewSnapshot(in Input) Snapshot {
	return Snapshot{in: in}
}

// TakeSnapshot reads every value Compute needs from pc once.
// Later changes to the host plot do not affect the returned Snapshot.
func TakeSnapshot(pc PlotContext) Snapshot {
	var in Input
	for _, a := range axes {
		in.Ranges[a] = pc.Limits(a)
		in.Scales[a] = pc.ScaleKind(a)
	}
	in.Aspect = pc.DataAspectRatio()
	in.View = pc.CameraView()
	in.Projection = pc.Projection()
	in.Viewport = pc.ViewportSize()
	return Snapshot{in: in}
}

// Input returns the captured values.
func (s Snapshot) Input() Input { return s.in }

func (s Snapshot) Limits(a Axis) AxisRange      { return s.in.Ranges[a] }
func (s Snapshot) DataAspectRatio() AspectRatio { return s.in.Aspect }
func (s Snapshot) CameraView() View             { return s.in.View }
func (s Snapshot) Projection() ProjectionMode   { return s.in.Projection }
func (s Snapshot) ScaleKind(a Axis) ScaleKind   { return s.in.Scales[a] }
func (s Snapshot) ViewportSize() Viewport       { return s.in.Viewport }

// contextHolder wraps the interface so it can live in an atomic.Pointer.
type contextHolder struct {
	pc PlotContext
}

var defaultContext atomic.Pointer[contextHolder]

// SetDefaultContext registers the plot FromContext uses when called without
// arguments, typically the host's current plot. Pass nil to clear it.
func SetDefaultContext(pc PlotContext) {
	if pc == nil {
		defaultContext.Store(nil)
		return
	}
	defaultContext.Store(&contextHolder{pc: pc})
}

// DefaultContext returns the registered default plot, or nil.
func DefaultContext() PlotContext {
	if h := defaultContext.Load(); h != nil {
		return h.pc
	}
	return nil
}

// FromContext snapshots a plot context and computes its axis factors.
//
// With no argument the default context is used. Only the first context is
// read; any further ones are ignored and reported with
// DiagExtraArgumentsIgnored.
func FromContext(contexts ...PlotContext) (Result, error) {
	return FromContextWith(nil, contexts...)
}

// FromContextWith is FromContext with options. The options apply to the
// computation and to logging of the extra-argument diagnostic.
func FromContextWith(opts []Option, contexts ...PlotContext) (Result, error) {
	var pc PlotContext
	if len(contexts) == 0 {
		pc = DefaultContext()
	} else {
		pc = contexts[0]
	}
	if pc == nil {
		return Result{}, ErrNoContext
	}

	res, err := Compute(TakeSnapshot(pc).Input(), opts...)
	if err != nil {
		return Result{}, err
	}

	if extra := len(contexts) - 1; extra > 0 {
		d := Diagnostic{
			Code:    DiagExtraArgumentsIgnored,
			Message: fmt.Sprintf("%d extra plot context(s) ignored", extra),
		}
		res.Diagnostics = append(res.Diagnostics, d)
		logDiagnostics(newOptions(opts).logger, []Diagnostic{d})
	}
	return res, nil
}
