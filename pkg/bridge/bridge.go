package bridge

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/lodriguez/SpaceBridge/internal/configsvc"
	"github.com/lodriguez/SpaceBridge/internal/dispatchsvc"
	"github.com/lodriguez/SpaceBridge/internal/scsvc"
	"github.com/lodriguez/SpaceBridge/internal/uinput"
	"github.com/lodriguez/SpaceBridge/pkg/mailbox"
	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

type Bridge struct {
	config     Config
	configPath string

	log       *zap.Logger
	level     zap.AtomicLevel
	configSvc *configsvc.Service
}

func New(configPath string) (*Bridge, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.Level = level
	loggerConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000000")
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &Bridge{
		config:     config,
		configPath: configPath,
		log:        logger,
		level:      level,
		configSvc:  configsvc.New(logger.Named("config")),
	}, nil
}

func (b *Bridge) Config() Config {
	return b.config
}

// Run connects to the SpaceControl daemon, creates the enabled virtual
// devices and pumps samples between them until the context is cancelled.
// It returns nil when no physical device is attached.
func (b *Bridge) Run(ctx context.Context, daemonConfig string) error {
	if daemonConfig != "" {
		// The daemon loads this profile itself; we only sanity-check the path.
		if _, err := os.Stat(daemonConfig); err != nil {
			b.log.Warn("Daemon profile not found", zap.String("path", daemonConfig), zap.Error(err))
		} else {
			b.log.Info("Using daemon profile", zap.String("path", daemonConfig))
		}
	}

	link, err := scontrol.Open(b.config.LibraryPath)
	if err != nil {
		return fmt.Errorf("failed to load SpaceControl library: %w", err)
	}
	b.log.Info("SpaceControl library loaded", zap.String("path", b.config.LibraryPath))

	if err := link.Connect(true, ""); err != nil {
		return fmt.Errorf("failed to connect to SpaceControl daemon (is it running?): %w", err)
	}
	count, err := link.DeviceCount()
	if err != nil {
		return multierr.Append(fmt.Errorf("failed to query device count: %w", err), link.Disconnect())
	}
	b.log.Info("Connected to SpaceControl daemon",
		zap.Int("total", count.Total),
		zap.Int("used", count.Used),
		zap.Int("maxIndex", count.MaxIndex),
	)
	if count.Total == 0 {
		b.log.Info("No SpaceControl devices attached, nothing to bridge")
		return link.Disconnect()
	}

	dispatchers, err := b.createDispatchers()
	if err != nil {
		return multierr.Append(err, link.Disconnect())
	}
	if len(dispatchers) == 0 {
		b.log.Warn("All profiles are disabled, no events will be forwarded")
	}

	mb := mailbox.New[scontrol.Sample]()
	acquire := scsvc.New(b.log.Named("sc"), link, b.config.DeviceIndex, mb,
		scsvc.WithPollInterval(time.Duration(b.config.PollInterval)))
	dispatch := dispatchsvc.New(b.log.Named("dispatch"), mb, dispatchers,
		dispatchsvc.WithTakeTimeout(time.Duration(b.config.TakeTimeout)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return b.configSvc.Start(groupCtx)
	})
	group.Go(func() error {
		select {
		case <-b.configSvc.Ready():
		case <-groupCtx.Done():
			return nil
		}
		if _, err := configsvc.Register(b.configSvc, b.configPath, b.config, b.onConfigChange); err != nil {
			b.log.Warn("Failed to watch config file", zap.Error(err))
		}
		return nil
	})
	group.Go(func() error {
		return acquire.Start(groupCtx)
	})
	group.Go(func() error {
		return dispatch.Start(groupCtx)
	})

	// Sinks and the daemon connection are released only after both loops
	// have joined.
	runErr := group.Wait()
	if err := dispatch.Close(); err != nil {
		runErr = multierr.Append(runErr, fmt.Errorf("failed to close virtual devices: %w", err))
	}
	if err := link.Disconnect(); err != nil {
		runErr = multierr.Append(runErr, fmt.Errorf("failed to disconnect from daemon: %w", err))
	}
	return runErr
}

func (b *Bridge) createDispatchers() ([]*dispatchsvc.Dispatcher, error) {
	profiles := []struct {
		profile *dispatchsvc.Profile
		config  ProfileConfig
	}{
		{dispatchsvc.PointerProfile(), b.config.Pointer},
		{dispatchsvc.GamepadProfile(), b.config.Gamepad},
	}
	var dispatchers []*dispatchsvc.Dispatcher
	for _, p := range profiles {
		log := b.log.Named("uinput").Named(p.profile.Name)
		if !p.config.Enabled {
			log.Info("Profile disabled")
			continue
		}
		dev, err := uinput.Create(b.config.UinputPath, uinput.DeviceConfig{
			Name:    p.config.Name,
			Vendor:  p.config.VendorID,
			Product: p.config.ProductID,
			Keys:    p.profile.Keys(),
		})
		if err != nil {
			for _, d := range dispatchers {
				err = multierr.Append(err, d.CloseSink())
			}
			return nil, fmt.Errorf("failed to create virtual device %q: %w", p.config.Name, err)
		}
		log.Info("Virtual device created",
			zap.String("name", p.config.Name),
			zap.Uint16("vendor", p.config.VendorID),
			zap.Uint16("product", p.config.ProductID),
		)
		dispatchers = append(dispatchers, dispatchsvc.NewDispatcher(b.log.Named("dispatch"), p.profile, dev, b.config.AxisScale))
	}
	return dispatchers, nil
}

// onConfigChange applies what can change at runtime (the log level) and
// flags everything else as needing a restart.
func (b *Bridge) onConfigChange(config Config, err error) {
	if err != nil {
		b.log.Error("Failed to reload config", zap.Error(err))
		return
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		b.log.Warn("Invalid log level in config", zap.String("logLevel", config.LogLevel))
	} else if b.level.Level() != level {
		b.level.SetLevel(level)
		b.log.Info("Log level changed", zap.Stringer("level", level))
	}
	config.LogLevel = b.config.LogLevel
	if config != b.config {
		b.log.Warn("Configuration changed, restart to apply")
	}
}

// ListDevices makes a one-shot connection to the daemon and reports how
// many devices it sees.
func (b *Bridge) ListDevices() (scontrol.DeviceCount, error) {
	link, err := scontrol.Open(b.config.LibraryPath)
	if err != nil {
		return scontrol.DeviceCount{}, fmt.Errorf("failed to load SpaceControl library: %w", err)
	}
	if err := link.Connect(true, ""); err != nil {
		return scontrol.DeviceCount{}, fmt.Errorf("failed to connect to SpaceControl daemon (is it running?): %w", err)
	}
	defer func() {
		_ = link.Disconnect()
	}()
	return link.DeviceCount()
}
