package core

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/timzifer/taskqueue/internal/telemetry"
)

// ErrNilSource is returned when a nil Source is registered.
var ErrNilSource = errors.New("core: nil append source")

// Source beschreibt eine Queue, deren Inhalt in ein Ziel verschoben wird.
//
// PrepareAppend entnimmt den Inhalt der Quelle und liefert Publish-/Abort-
// Callbacks sowie die Anzahl der vorgemerkten Tasks. Erst wenn alle Quellen
// erfolgreich vorbereitet wurden, ruft der Orchestrator die Publish-Callbacks
// auf. Bei Fehlern oder Kontextabbruch werden die Abort-Callbacks in
// umgekehrter Reihenfolge ausgeführt und stellen die Quellen wieder her.
type Source interface {
	PrepareAppend(ctx context.Context) (staged int, publish func(), abort func(), err error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) (int, func(), func(), error)

func (f SourceFunc) PrepareAppend(ctx context.Context) (int, func(), func(), error) {
	return f(ctx)
}

// AppendOrchestrator serialisiert Batch-Appends über alle bekannten Quellen.
type AppendOrchestrator struct {
	mu      sync.Mutex
	sources []Source
	version atomic.Uint64
}

type observerKey struct{}

// WithObserver returns a context that notifies observer about the final
// outcome of AppendAll. On success the observer is invoked immediately before
// the publish callbacks run; on failure it is invoked after the abort
// callbacks and before the error is returned.
func WithObserver(ctx context.Context, observer func(staged int, err error)) context.Context {
	if observer == nil {
		return ctx
	}
	return context.WithValue(ctx, observerKey{}, observer)
}

// NewAppendOrchestrator erzeugt einen neuen Orchestrator.
func NewAppendOrchestrator(sources ...Source) *AppendOrchestrator {
	copySources := append([]Source(nil), sources...)
	return &AppendOrchestrator{sources: copySources}
}

// AppendAll bereitet alle Quellen vor und veröffentlicht sie gemeinsam.
// It returns the number of tasks that were published.
func (o *AppendOrchestrator) AppendAll(ctx context.Context) (moved int, err error) {
	ctx, finish := telemetry.TraceBatch(ctx)
	defer func() { finish(moved, err) }()

	observer, _ := ctx.Value(observerKey{}).(func(int, error))

	o.mu.Lock()
	defer o.mu.Unlock()

	publishes := make([]func(), 0, len(o.sources))
	aborts := make([]func(), 0, len(o.sources))
	staged := 0

	for i, source := range o.sources {
		if err = ctx.Err(); err != nil {
			break
		}
		if source == nil {
			err = errors.Wrapf(ErrNilSource, "source %d", i)
			break
		}
		var n int
		var publish, abort func()
		n, publish, abort, err = source.PrepareAppend(ctx)
		if err != nil {
			break
		}
		if publish == nil {
			publish = func() {}
		}
		if abort == nil {
			abort = func() {}
		}
		staged += n
		publishes = append(publishes, publish)
		aborts = append(aborts, abort)
	}

	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		for i := len(aborts) - 1; i >= 0; i-- {
			aborts[i]()
		}
		if observer != nil {
			observer(0, err)
		}
		return 0, err
	}

	if observer != nil {
		observer(staged, nil)
	}

	for _, publish := range publishes {
		publish()
	}

	o.version.Add(1)
	return staged, nil
}

// Version gibt die Anzahl erfolgreich veröffentlichter Batches zurück.
func (o *AppendOrchestrator) Version() uint64 {
	return o.version.Load()
}

// RegisterSource hängt zur Laufzeit eine weitere Quelle an.
func (o *AppendOrchestrator) RegisterSource(source Source) error {
	if source == nil {
		return ErrNilSource
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sources = append(o.sources, source)
	return nil
}
