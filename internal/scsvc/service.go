// Package scsvc runs the acquisition side of the bridge: it owns the
// daemon link for polling and publishes every fresh sample to the mailbox.
package scsvc

import (
	"context"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/lodriguez/SpaceBridge/pkg/mailbox"
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

var defaultServiceOptions = serviceOptions{
	pollInterval: 2 * time.Millisecond,
}

type serviceOptions struct {
	pollInterval time.Duration
}

type Option func(*serviceOptions)

// WithPollInterval sets the pause after an empty or failed poll. Successful
// polls are drained back-to-back so bursts are not rate-limited.
func WithPollInterval(d time.Duration) Option {
	return func(o *serviceOptions) {
		o.pollInterval = d
	}
}

// Stats counts acquisition cycles. Published counts every sample handed to
// the mailbox; the consumer may still drop all but the latest.
type Stats struct {
	Published uint64
	NoChange  uint64
	Errors    uint64
}

// Service polls one device of the connected daemon. It never blocks the
// consumer: publishing overwrites the mailbox slot.
type Service struct {
	log     *zap.Logger
	options serviceOptions
	link    scontrol.Link
	devIdx  int
	mb      *mailbox.Mailbox[scontrol.Sample]

	published atomic.Uint64
	noChange  atomic.Uint64
	errors    atomic.Uint64
}

func New(log *zap.Logger, link scontrol.Link, devIdx int, mb *mailbox.Mailbox[scontrol.Sample], opts ...Option) *Service {
	options := defaultServiceOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &Service{
		log:     log,
		options: options,
		link:    link,
		devIdx:  devIdx,
		mb:      mb,
	}
}

// Start runs the acquisition loop until the context is cancelled. Fetch
// errors are recoverable per cycle: the daemon may come back, so the loop
// logs and keeps polling.
func (s *Service) Start(ctx context.Context) error {
	s.log.Info("Acquisition loop started", zap.Int("device", s.devIdx))
	for {
		select {
		case <-ctx.Done():
			stats := s.Stats()
			s.log.Info("Acquisition loop stopped",
				zap.Uint64("published", stats.Published),
				zap.Uint64("noChange", stats.NoChange),
				zap.Uint64("errors", stats.Errors))
			return nil
		default:
		}

		sample, status := s.link.Fetch(s.devIdx)
		switch {
		case status == scontrol.StatusOK:
			s.mb.Publish(sample)
			s.published.Inc()
			s.log.Debug("Sample published",
				zap.Int32("event", sample.Event),
				zap.String("decoded", scontrol.DescribeEvent(sample.Event)))
			continue
		case status.IsNoChange():
			s.noChange.Inc()
		default:
			s.errors.Inc()
			s.log.Error("Fetch failed",
				zap.Int32("status", int32(status)),
				zap.Stringer("decoded", status))
		}
		sleep(ctx, s.options.pollInterval)
	}
}

// Stats returns a snapshot of the cycle counters.
func (s *Service) Stats() Stats {
	return Stats{
		Published: s.published.Load(),
		NoChange:  s.noChange.Load(),
		Errors:    s.errors.Load(),
	}
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
