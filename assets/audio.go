package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of sound effects
type AudioLoader struct {
	sfxCache map[string][]byte // decoded PCM bytes per path
	context  *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var decoded []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		decoded, err = io.ReadAll(stream)
		if err != nil {
			return fmt.Errorf("failed to read decoded audio %s: %w", path, err)
		}

	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		decoded, err = io.ReadAll(stream)
		if err != nil {
			return fmt.Errorf("failed to read decoded audio %s: %w", path, err)
		}

	default:
		return fmt.Errorf("unsupported audio format: %s", path)
	}

	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a fresh player for the sound effect so overlapping plays
// don't cut each other off.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[path]), nil
}
