// Package dispatchsvc consumes the sample mailbox and drives the virtual
// output devices: it classifies each sample, translates axis motion, and
// tracks button edges per profile.
package dispatchsvc

import (
	"context"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lodriguez/SpaceBridge/pkg/mailbox"
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

var defaultServiceOptions = serviceOptions{
	takeTimeout: 500 * time.Millisecond,
}

type serviceOptions struct {
	takeTimeout time.Duration
}

type Option func(*serviceOptions)

// WithTakeTimeout bounds how long one mailbox wait may block. The timeout
// only paces shutdown responsiveness; expiring is not an error.
func WithTakeTimeout(d time.Duration) Option {
	return func(o *serviceOptions) {
		o.takeTimeout = d
	}
}

// Service is the dispatch loop. It is the sole owner of every dispatcher:
// no other goroutine touches their state.
type Service struct {
	log         *zap.Logger
	options     serviceOptions
	mb          *mailbox.Mailbox[scontrol.Sample]
	dispatchers []*Dispatcher
}

func New(log *zap.Logger, mb *mailbox.Mailbox[scontrol.Sample], dispatchers []*Dispatcher, opts ...Option) *Service {
	options := defaultServiceOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &Service{
		log:         log,
		options:     options,
		mb:          mb,
		dispatchers: dispatchers,
	}
}

// Start runs the dispatch loop until the context is cancelled. A sink
// failure is fatal for that profile only; the loop keeps serving the rest.
func (s *Service) Start(ctx context.Context) error {
	s.log.Info("Dispatch loop started", zap.Int("profiles", len(s.dispatchers)))
	active := len(s.dispatchers)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("Dispatch loop stopped")
			return nil
		default:
		}
		sample, ok := s.mb.Take(s.options.takeTimeout)
		if !ok {
			continue
		}
		for _, d := range s.dispatchers {
			if d.failed {
				continue
			}
			if err := d.Update(sample); err != nil {
				s.log.Error("Disabling profile after sink failure",
					zap.String("profile", d.ProfileName()), zap.Error(err))
				d.failed = true
				_ = d.sink.Close()
				active--
				if active == 0 {
					s.log.Warn("No active profiles remain; samples will be discarded")
				}
			}
		}
	}
}

// Close releases the sinks of every profile that is still alive. Called
// after the loop has been joined.
func (s *Service) Close() error {
	var err error
	for _, d := range s.dispatchers {
		if d.failed {
			continue
		}
		err = multierr.Append(err, d.sink.Close())
	}
	return err
}
