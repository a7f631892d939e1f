package dispatchsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lodriguez/SpaceBridge/pkg/scontrol"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		event    int32
		motion   bool
		expected Classified
	}{
		{
			name:     "no change",
			event:    -1,
			expected: Classified{Kind: KindNone},
		},
		{
			name:     "zero event",
			event:    0,
			expected: Classified{Kind: KindNone},
		},
		{
			name:     "button mask",
			event:    1<<0 | 1<<3,
			expected: Classified{Kind: KindLowLevel, Buttons: scontrol.DecodeButtons(1<<0 | 1<<3)},
		},
		{
			name:     "high-level event",
			event:    int32(scontrol.EventFront),
			expected: Classified{Kind: KindHighLevel, Code: scontrol.EventFront},
		},
		{
			name:     "motion wins over buttons",
			event:    1 << 0,
			motion:   true,
			expected: Classified{Kind: KindMotion},
		},
		{
			name:     "motion wins over high-level",
			event:    int32(scontrol.EventFit),
			motion:   true,
			expected: Classified{Kind: KindMotion},
		},
		{
			name:     "reserved-only mask is still a button cycle",
			event:    1<<15 | 1<<16,
			expected: Classified{Kind: KindLowLevel},
		},
		{
			name:     "unknown high-level code keeps its value",
			event:    0x2F000,
			expected: Classified{Kind: KindHighLevel, Code: 0x2F000},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Classify(test.event, test.motion))
		})
	}
}
