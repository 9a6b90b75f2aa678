package ui

import (
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Audio plays the background track. A nil *Audio is a valid silent player.
type Audio struct {
	music   rl.Music
	volume  float32
	playing bool
	started bool
}

// NewAudio opens the audio device and streams path. An empty path disables
// audio and returns nil without error.
func NewAudio(path string, volume float32) (*Audio, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("music file: %w", err)
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil, fmt.Errorf("audio device not ready")
	}

	a := &Audio{music: rl.LoadMusicStream(path)}
	a.SetVolume(volume)
	log.Printf("[AUDIO] streaming %s", path)
	return a, nil
}

// Update refills the stream buffers. Call once per frame.
func (a *Audio) Update() {
	if a == nil {
		return
	}
	rl.UpdateMusicStream(a.music)
}

// SetPlaying starts or pauses the track. Repeated calls are cheap.
func (a *Audio) SetPlaying(play bool) {
	if a == nil || a.playing == play {
		return
	}
	if play {
		if a.started {
			rl.ResumeMusicStream(a.music)
		} else {
			rl.PlayMusicStream(a.music)
			a.started = true
		}
	} else {
		rl.PauseMusicStream(a.music)
	}
	a.playing = play
}

// SetVolume clamps v to [0,1].
func (a *Audio) SetVolume(v float32) {
	if a == nil {
		return
	}
	a.volume = min(max(v, 0), 1)
	rl.SetMusicVolume(a.music, a.volume)
}

func (a *Audio) Volume() float32 {
	if a == nil {
		return 0
	}
	return a.volume
}

func (a *Audio) Close() {
	if a == nil {
		return
	}
	rl.UnloadMusicStream(a.music)
	rl.CloseAudioDevice()
}
