// Package session holds the current board graph of a running process.
//
// Graph values are immutable, so a session only has to swap one pointer:
// readers always see a complete graph, and a mutation is "load current,
// apply operations, compare-and-swap". No locks are taken.
//
// # Usage
//
//	sess, err := session.New(pinboard.Seed(nil), session.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//
//	g := sess.Update(ctx, pinboard.AddDocument(doc))
//	el, err := sess.Layout(ctx, layout.Options{Direction: layout.LeftRight})
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pinboard/pkg/layout"
	"github.com/matzehuels/pinboard/pkg/observability"
	"github.com/matzehuels/pinboard/pkg/pinboard"
)

// Session owns the current graph. The zero value is not usable; use [New].
type Session struct {
	ID        string
	CreatedAt time.Time

	current atomic.Pointer[pinboard.Graph]
	version atomic.Uint64
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for debug output on updates.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// GenerateID creates a cryptographically secure random session ID.
func GenerateID() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// New creates a session whose current graph is initial.
func New(initial pinboard.Graph, opts ...Option) (*Session, error) {
	id, err := GenerateID()
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&initial)
	return s, nil
}

// Current returns the current graph.
func (s *Session) Current() pinboard.Graph {
	return *s.current.Load()
}

// Version counts the replacements since the session was created.
func (s *Session) Version() uint64 { return s.version.Load() }

// Replace installs g as the current graph and returns the previous one.
func (s *Session) Replace(ctx context.Context, g pinboard.Graph) pinboard.Graph {
	prev := s.current.Swap(&g)
	s.committed(ctx, 0, *prev, g)
	return *prev
}

// Update applies ops to the current graph and installs the result, which it
// returns. If another goroutine replaces the graph in between, the ops are
// re-applied to the newer graph, so no update is lost.
func (s *Session) Update(ctx context.Context, ops ...pinboard.Op) pinboard.Graph {
	for {
		prev := s.current.Load()
		next := pinboard.Apply(*prev, ops...)
		if s.current.CompareAndSwap(prev, &next) {
			s.committed(ctx, len(ops), *prev, next)
			return next
		}
	}
}

// Layout computes a fresh layout of the current graph.
func (s *Session) Layout(ctx context.Context, opts layout.Options) (layout.Elements, error) {
	if opts.Logger == nil {
		opts.Logger = s.logger
	}
	return layout.Compute(ctx, s.Current(), opts)
}

func (s *Session) committed(ctx context.Context, ops int, before, after pinboard.Graph) {
	v := s.version.Add(1)
	b, a := stats(before), stats(after)
	observability.Graph().OnGraphUpdate(ctx, ops, b, a)
	s.logger.Debug("graph updated",
		"session", s.ID,
		"version", v,
		"ops", ops,
		"vertices", a.Vertices,
		"edges", a.Edges,
	)
}

func stats(g pinboard.Graph) observability.GraphStats {
	st := g.Stats()
	return observability.GraphStats{Vertices: st.Vertices(), Edges: st.Edges}
}
