package dispatchsvc

import (
	"go.uber.org/zap"

	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

// Sink is the output side of one profile: a virtual device accepting
// absolute-axis and key writes batched by Sync. *uinput.Device satisfies
// it; tests use recorders.
type Sink interface {
	WriteAbs(code uint16, value int32) error
	WriteKey(code uint16, value int32) error
	Sync() error
	Close() error
}

// ButtonMapping resolves one physical button to an evdev key code. Slice
// order is emission order.
type ButtonMapping struct {
	Button scontrol.Button
	Code   uint16
}

// EventMapping resolves one high-level event to an evdev key code.
type EventMapping struct {
	Event scontrol.EventCode
	Code  uint16
}

// Profile describes one virtual output device as pure data: the code
// tables that resolve SpaceControl buttons and events, and the axis labels
// used in motion logs. The same generic dispatcher runs every profile;
// only the descriptor varies.
type Profile struct {
	Name       string
	AxisLabels [6]string
	Buttons    []ButtonMapping
	HighLevel  []EventMapping
}

func (p *Profile) highCode(e scontrol.EventCode) (uint16, bool) {
	for _, m := range p.HighLevel {
		if m.Event == e {
			return m.Code, true
		}
	}
	return 0, false
}

// Keys returns every evdev key code the profile can emit, deduplicated,
// for the sink's capability declaration.
func (p *Profile) Keys() []uint16 {
	seen := make(map[uint16]struct{}, len(p.Buttons)+len(p.HighLevel))
	keys := make([]uint16, 0, len(p.Buttons)+len(p.HighLevel))
	for _, m := range p.Buttons {
		if _, ok := seen[m.Code]; ok {
			continue
		}
		seen[m.Code] = struct{}{}
		keys = append(keys, m.Code)
	}
	for _, m := range p.HighLevel {
		if _, ok := seen[m.Code]; ok {
			continue
		}
		seen[m.Code] = struct{}{}
		keys = append(keys, m.Code)
	}
	return keys
}

// Dispatcher drives one sink from the sample stream. It owns its axis and
// button state exclusively; nothing else reads or writes them.
type Dispatcher struct {
	log     *zap.Logger
	profile *Profile
	sink    Sink
	axes    *axisTranslator
	buttons *edgeTracker
	failed  bool
}

func NewDispatcher(log *zap.Logger, profile *Profile, sink Sink, scale int32) *Dispatcher {
	return &Dispatcher{
		log:     log.Named(profile.Name),
		profile: profile,
		sink:    sink,
		axes:    newAxisTranslator(scale),
		buttons: newEdgeTracker(profile),
	}
}

// Update runs one full cycle: axis translation, classification, edge
// tracking, then a single sync marking the cycle's events as one batch.
func (d *Dispatcher) Update(s scontrol.Sample) error {
	values, moved, err := d.axes.translate(s, d.sink)
	if err != nil {
		return err
	}
	if moved {
		d.log.Debug("Motion",
			zap.Int32(d.profile.AxisLabels[0], values[0]),
			zap.Int32(d.profile.AxisLabels[1], values[1]),
			zap.Int32(d.profile.AxisLabels[2], values[2]),
			zap.Int32(d.profile.AxisLabels[3], values[3]),
			zap.Int32(d.profile.AxisLabels[4], values[4]),
			zap.Int32(d.profile.AxisLabels[5], values[5]),
		)
	}
	if err := d.buttons.apply(Classify(s.Event, moved), d.sink, d.log); err != nil {
		return err
	}
	return d.sink.Sync()
}

// ProfileName returns the descriptor name for log lines.
func (d *Dispatcher) ProfileName() string {
	return d.profile.Name
}

// CloseSink releases the virtual device behind the dispatcher.
func (d *Dispatcher) CloseSink() error {
	return d.sink.Close()
}
