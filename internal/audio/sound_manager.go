// Package audio synthesizes the game's sound effects. All sounds are
// generated procedurally, so there are no asset files to ship.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the eat and crash effects through a shared mixer.
// A manager that failed to initialize (no audio device) stays silent;
// every Play call is a no-op in that case.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences everything.
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles sound output without tearing down the device.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayEat plays a short bright blip when the snake eats.
func (sm *SoundManager) PlayEat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*120), NewBlipGenerator(sampleRate, 880))
	sm.mixer.Add(streamer)
}

// PlayCrash plays a low thud when the run ends.
func (sm *SoundManager) PlayCrash() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*350), NewThudGenerator(sampleRate))
	sm.mixer.Add(streamer)
}

// BlipGenerator generates a short rising blip.
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip generator at the given base frequency.
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch rises over the blip's lifetime
		freq := g.freq * (1 + 0.5*t/0.12)
		sample := 0.25 * math.Sin(2*math.Pi*freq*t)

		// Fast attack, exponential release
		attack := math.Min(t/0.005, 1.0)
		sample *= attack * math.Exp(-t*25)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// ThudGenerator generates a low crash thud with a noise tail.
type ThudGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewThudGenerator creates a thud generator.
func NewThudGenerator(sr beep.SampleRate) *ThudGenerator {
	return &ThudGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 10)

		// Pitch drops from 160Hz toward 80Hz
		freq := 160 * (1 - 0.5*math.Min(t/0.35, 1))
		tone := 0.35 * math.Sin(2*math.Pi*freq*t)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := envelope * (tone + 0.1*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
