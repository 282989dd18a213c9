package pipeline

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/kbukum/lazycollect/errors"
	"github.com/kbukum/lazycollect/logger"
	"github.com/kbukum/lazycollect/queue"
	"github.com/kbukum/lazycollect/sequence"
	"github.com/kbukum/lazycollect/telemetry"
)

// Pipeline pairs an items snapshot with a queue of pending descriptors.
type Pipeline struct {
	id       string
	parentID string
	items    []any
	queue    *queue.Queue[Descriptor]
	opts     options
	err      error
}

// From creates a pipeline over input. nil yields an empty pipeline, a slice
// or array is copied element by element, and any other value becomes a
// single item.
func From(input any, opts ...Option) *Pipeline {
	return New(sequence.Normalize(input), opts...)
}

// New creates a pipeline over a copy of items.
func New(items []any, opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		id:    uuid.NewString(),
		items: copyItems(items),
		queue: queue.New[Descriptor](),
		opts:  o,
	}
}

// Failed creates a pipeline whose every drain returns err.
func Failed(err error, opts ...Option) *Pipeline {
	p := New(nil, opts...)
	p.err = err
	return p
}

func copyItems(items []any) []any {
	out := make([]any, len(items))
	copy(out, items)
	return out
}

// ID returns the pipeline's identifier.
func (p *Pipeline) ID() string { return p.id }

// ParentID returns the identifier of the pipeline this one was derived
// from, or "" for a root pipeline.
func (p *Pipeline) ParentID() string { return p.parentID }

// Pending returns the queued operations, oldest first.
func (p *Pipeline) Pending() []Op {
	queued := p.queue.Items()
	ops := make([]Op, len(queued))
	for i, d := range queued {
		ops[i] = d.op
	}
	return ops
}

// Clone returns an independent pipeline with copies of the items and queue.
func (p *Pipeline) Clone() *Pipeline {
	return &Pipeline{
		id:       uuid.NewString(),
		parentID: p.id,
		items:    copyItems(p.items),
		queue:    queue.New(p.queue.Items()...),
		opts:     p.opts,
		err:      p.err,
	}
}

// enqueue appends d to the receiver's queue and returns a clone holding it.
func (p *Pipeline) enqueue(d Descriptor) *Pipeline {
	p.queue.Enqueue(d)
	return p.Clone()
}

// resolve appends a terminal descriptor and drains.
func (p *Pipeline) resolve(ctx context.Context, d Descriptor) (outcome, error) {
	p.queue.Enqueue(d)
	return p.drain(ctx)
}

// drain applies every queued descriptor, in order, to a fresh engine seeded
// with a copy of the items.
func (p *Pipeline) drain(ctx context.Context) (outcome, error) {
	if p.err != nil {
		p.queue.Clear()
		return outcome{}, p.err
	}
	start := time.Now()
	log := p.opts.log.WithPipeline(p.id, p.parentID)
	inst := p.opts.instruments
	depth := p.queue.Size()

	ctx, span := inst.StartDrain(ctx, p.id, p.parentID, depth, len(p.items))
	defer span.End()

	log.Debug("drain started", logger.Fields(
		logger.FieldQueueDepth, depth,
		logger.FieldItems, len(p.items),
	))

	engine := sequence.New(copyItems(p.items), p.opts.engineOptions()...)
	items := engine.All()
	result := outcome{items: items}
	var terminal Op

	fail := func(op Op, err error) (outcome, error) {
		p.queue.Clear()
		telemetry.SetSpanError(span, err)
		inst.RecordDrain(ctx, time.Since(start), op.String(), err)
		log.WithError(err).Warn("drain failed", logger.Fields(
			logger.FieldOperation, op.String(),
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
		return outcome{}, err
	}

	for step := 0; ; step++ {
		d, ok := p.queue.Dequeue()
		if !ok {
			break
		}
		if terminal != 0 {
			return fail(d.op, apperrors.ContractViolation(d.op.String(), terminal.String()))
		}
		if err := ctx.Err(); err != nil {
			return fail(d.op, err)
		}

		stepCtx, stepSpan := inst.StartStep(ctx, d.op.String(), step)
		out, err := apply(stepCtx, engine, d)
		if err != nil {
			telemetry.SetSpanError(stepSpan, err)
			stepSpan.End()
			return fail(d.op, err)
		}
		stepSpan.End()
		inst.RecordStep(ctx, d.op.String())
		log.Trace("step applied", logger.Fields(
			logger.FieldOperation, d.op.String(),
			logger.FieldStep, step,
		))

		if out.terminal {
			terminal = d.op
			result = out
			continue
		}
		result = out
		items = out.items
		engine = sequence.New(copyItems(items), p.opts.engineOptions()...)
	}

	p.items = items
	inst.RecordDrain(ctx, time.Since(start), "", nil)
	log.Debug("drain finished", logger.Fields(
		logger.FieldItems, len(p.items),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return result, nil
}

// All drains the queue and returns the resulting items.
func (p *Pipeline) All(ctx context.Context) ([]any, error) {
	out, err := p.drain(ctx)
	if err != nil {
		return nil, err
	}
	return copyItems(out.items), nil
}

// Resolve is an alias of All.
func (p *Pipeline) Resolve(ctx context.Context) ([]any, error) { return p.All(ctx) }

// Await is an alias of All.
func (p *Pipeline) Await(ctx context.Context) ([]any, error) { return p.All(ctx) }

// Then drains the pipeline and hands the items to onFulfilled, or the error
// to onRejected. A nil handler passes its input through.
func (p *Pipeline) Then(
	ctx context.Context,
	onFulfilled func([]any) (any, error),
	onRejected func(error) (any, error),
) (any, error) {
	items, err := p.All(ctx)
	if err != nil {
		if onRejected == nil {
			return nil, err
		}
		return onRejected(err)
	}
	if onFulfilled == nil {
		return items, nil
	}
	return onFulfilled(items)
}

// AllAs drains p and converts every item to T.
func AllAs[T any](ctx context.Context, p *Pipeline) ([]T, error) {
	items, err := p.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	for i, item := range items {
		v, ok := item.(T)
		if !ok {
			return nil, apperrors.InvalidArgument("allAs",
				fmt.Sprintf("item %d is %T, not %v", i, item, reflect.TypeFor[T]())).
				WithDetail("index", i)
		}
		out[i] = v
	}
	return out, nil
}
