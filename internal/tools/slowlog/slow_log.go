package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultThreshold is the phase duration above which a breakpoint is logged as slow
const DefaultThreshold = 5 * time.Second

type Logger interface {
	Start(phase string)
	Stop(phase string) time.Duration
}

type phaseLogger struct {
	log       *zerolog.Logger
	threshold time.Duration
	now       func() time.Time
	phases    map[string]time.Time
	sync.Mutex
}

func (p *phaseLogger) Start(phase string) {
	p.Lock()
	p.phases[phase] = p.now()
	p.Unlock()
}

// Stop returns zero for a phase that was never started
func (p *phaseLogger) Stop(phase string) time.Duration {
	p.Lock()
	defer p.Unlock()

	start, ok := p.phases[phase]
	if !ok {
		return 0
	}
	delete(p.phases, phase)

	duration := p.now().Sub(start)

	event := p.log.Debug()
	if duration > p.threshold {
		event = p.log.Warn().Bool("slow", true)
	}

	event.
		Float64("duration", duration.Seconds()).
		Str("phase", phase).
		Msg("")

	return duration
}

func CreateLogger(log *zerolog.Logger, threshold time.Duration) *phaseLogger {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	logger := log.With().Str("label", "slowlog").Logger()
	return &phaseLogger{
		log:       &logger,
		threshold: threshold,
		now:       time.Now,
		phases:    make(map[string]time.Time),
	}
}
