// ABOUTME: Optional hourly chime synthesized through the speaker.
// ABOUTME: Pure hour-boundary detection plus best-effort tone playback.

package main

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// crossedHour reports whether a local wall-clock hour boundary lies between
// prev and now. A zero prev means "no previous observation" and never chimes;
// neither does time moving backwards (clock adjustments).
func crossedHour(prev, now time.Time) bool {
	if prev.IsZero() || !now.After(prev) {
		return false
	}
	if prev.Hour() != now.Hour() {
		return true
	}
	// Same displayed hour can still be a day (or more) apart.
	return prev.YearDay() != now.YearDay() || prev.Year() != now.Year()
}

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	})
	return speakerErr
}

// playChime plays a short two-tone chime. Audio failures are logged and
// otherwise ignored; the clock keeps running without sound.
func playChime() {
	if err := initSpeaker(); err != nil {
		log.Printf("chime: speaker unavailable: %v", err)
		return
	}

	low, err := generators.SinTone(chimeSampleRate, 659)
	if err != nil {
		log.Printf("chime: tone generation failed: %v", err)
		return
	}
	high, err := generators.SinTone(chimeSampleRate, 880)
	if err != nil {
		log.Printf("chime: tone generation failed: %v", err)
		return
	}

	speaker.Play(beep.Seq(
		beep.Take(chimeSampleRate.N(160*time.Millisecond), low),
		beep.Silence(chimeSampleRate.N(40*time.Millisecond)),
		beep.Take(chimeSampleRate.N(240*time.Millisecond), high),
	))
}
