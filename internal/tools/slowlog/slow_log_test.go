package slowlog

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time {
	return f.current
}

func (f *fakeClock) advance(d time.Duration) {
	f.current = f.current.Add(d)
}

func TestSlowLog(t *testing.T) {
	t.Run("should measure phases", func(t *testing.T) {
		tests := []struct {
			name          string
			logic         func(slowLog Logger, clock *fakeClock) []time.Duration
			expectedTimes []time.Duration
		}{
			{
				name: "single phase",
				logic: func(slowLog Logger, clock *fakeClock) []time.Duration {
					slowLog.Start("validate")
					clock.advance(time.Millisecond)
					return []time.Duration{slowLog.Stop("validate")}
				},
				expectedTimes: []time.Duration{time.Millisecond},
			},
			{
				name: "nested phases",
				logic: func(slowLog Logger, clock *fakeClock) []time.Duration {
					slowLog.Start("outer")
					clock.advance(time.Millisecond)

					slowLog.Start("inner")
					clock.advance(time.Millisecond)
					inner := slowLog.Stop("inner")

					clock.advance(time.Millisecond)
					outer := slowLog.Stop("outer")

					return []time.Duration{inner, outer}
				},
				expectedTimes: []time.Duration{time.Millisecond, 3 * time.Millisecond},
			},
			{
				name: "restarted phase",
				logic: func(slowLog Logger, clock *fakeClock) []time.Duration {
					slowLog.Start("same")
					clock.advance(3 * time.Millisecond)
					slowLog.Start("same")
					clock.advance(time.Millisecond)

					return []time.Duration{slowLog.Stop("same")}
				},
				expectedTimes: []time.Duration{time.Millisecond},
			},
			{
				name: "phase never started",
				logic: func(slowLog Logger, clock *fakeClock) []time.Duration {
					return []time.Duration{slowLog.Stop("missing")}
				},
				expectedTimes: []time.Duration{0},
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				log := zerolog.New(&bytes.Buffer{})
				clock := &fakeClock{current: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}

				slowLog := CreateLogger(&log, time.Second)
				slowLog.now = clock.now

				times := test.logic(slowLog, clock)

				assert.Empty(t, slowLog.phases)
				assert.Equal(t, test.expectedTimes, times)
			})
		}
	})

	t.Run("should warn above threshold", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out).Level(zerolog.InfoLevel)
		clock := &fakeClock{current: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}

		slowLog := CreateLogger(&log, time.Second)
		slowLog.now = clock.now

		slowLog.Start("fast")
		clock.advance(10 * time.Millisecond)
		slowLog.Stop("fast")

		assert.Empty(t, out.String())

		slowLog.Start("calcom-booking")
		clock.advance(2 * time.Second)
		slowLog.Stop("calcom-booking")

		assert.Contains(t, out.String(), `"level":"warn"`)
		assert.Contains(t, out.String(), `"phase":"calcom-booking"`)
		assert.Contains(t, out.String(), `"slow":true`)
		assert.Contains(t, out.String(), `"label":"slowlog"`)
	})

	t.Run("should fall back to default threshold", func(t *testing.T) {
		log := zerolog.New(&bytes.Buffer{})

		slowLog := CreateLogger(&log, 0)

		assert.Equal(t, DefaultThreshold, slowLog.threshold)
	})
}
