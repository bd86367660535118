package drawpass

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// CommandRecorder receives the resolved operations of a task in execution
// order. Backends implement it to translate passes into API-level command
// buffers; the render package ships a software implementation.
//
// Calls arrive strictly bracketed: BeginRenderPass, zero or more Record
// calls in paint order, then EndRenderPass, repeated once per pass.
type CommandRecorder interface {
	// BeginRenderPass opens a pass against target. load and clear describe
	// what happens to the target's existing contents.
	BeginRenderPass(target Target, load gputypes.LoadOp, clear gputypes.Color) error

	// Record replays one resolved draw op. The op aliases the pass's
	// storage and must be treated as read-only.
	Record(op *DrawOp) error

	// EndRenderPass closes the currently open pass.
	EndRenderPass() error
}

// Task is a schedulable unit of rendering work. A backend scheduler owns a
// task after finalize and executes it atomically: every pass runs to
// completion, in order, before the task is considered done.
type Task interface {
	// AddCommands replays the task's passes into rec.
	AddCommands(rec CommandRecorder) error
}

// RenderPassTask bundles one or more DrawPasses that share a single GPU
// pass boundary (same target dimensions and pixel format). It is created
// from the full accumulated pass history of a DrawContext at finalize time;
// ownership transfers to the caller.
type RenderPassTask struct {
	passes []*DrawPass
	load   gputypes.LoadOp
	clear  gputypes.Color
}

// MakeRenderPassTask takes ownership of passes and wraps them in a task.
// Returns nil when passes is empty: a finalize with nothing drawn yields no
// task, which callers treat as a normal outcome rather than an error.
//
// All passes must target surfaces with identical dimensions and format;
// mixing incompatible targets in one task is a programming error and panics.
//
// The task defaults to loading the target's existing contents; use
// WithClear to start from a clear color instead.
func MakeRenderPassTask(passes []*DrawPass) *RenderPassTask {
	if len(passes) == 0 {
		return nil
	}
	first := passes[0].Target()
	for _, p := range passes[1:] {
		t := p.Target()
		if t.Width() != first.Width() || t.Height() != first.Height() || t.Format() != first.Format() {
			panic("drawpass: RenderPassTask passes target incompatible surfaces")
		}
	}
	return &RenderPassTask{
		passes: passes,
		load:   gputypes.LoadOpLoad,
	}
}

// WithClear makes the task's first pass clear the target to c before
// drawing. Returns the task for chaining.
func (t *RenderPassTask) WithClear(c gputypes.Color) *RenderPassTask {
	t.load = gputypes.LoadOpClear
	t.clear = c
	return t
}

// Passes returns the ordered pass sequence. The slice aliases the task's
// storage and must not be modified.
func (t *RenderPassTask) Passes() []*DrawPass {
	return t.passes
}

// AddCommands replays every pass into rec in order. The first pass uses the
// task's load op; later passes always load, so earlier passes' output is
// preserved across pass boundaries.
func (t *RenderPassTask) AddCommands(rec CommandRecorder) error {
	load := t.load
	for i, pass := range t.passes {
		if err := rec.BeginRenderPass(pass.Target(), load, t.clear); err != nil {
			return fmt.Errorf("drawpass: begin pass %d: %w", i, err)
		}
		for j := 0; j < pass.Len(); j++ {
			if err := rec.Record(pass.Op(j)); err != nil {
				return fmt.Errorf("drawpass: record op %d of pass %d: %w", j, i, err)
			}
		}
		if err := rec.EndRenderPass(); err != nil {
			return fmt.Errorf("drawpass: end pass %d: %w", i, err)
		}
		load = gputypes.LoadOpLoad
	}
	return nil
}
