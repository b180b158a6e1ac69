// internal/assets/audio_config.go
package assets

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"rtd-tower-defense/internal/config"
)

// AudioConfig — настройки звука из окружения.
type AudioConfig struct {
	Enabled    bool
	Volume     float64 // 0..1
	SampleRate int
}

// LoadAudioConfig reads RTD_AUDIO_ENABLED, RTD_MASTER_VOLUME (0-100) and RTD_SAMPLE_RATE.
// Unset variables keep their defaults; malformed ones are an error.
func LoadAudioConfig() (AudioConfig, error) {
	cfg := AudioConfig{
		Enabled:    true,
		Volume:     1,
		SampleRate: config.SampleRate,
	}

	if v, ok := os.LookupEnv("RTD_AUDIO_ENABLED"); ok && v != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("RTD_AUDIO_ENABLED: %w", err)
		}
		cfg.Enabled = enabled
	}

	if v, ok := os.LookupEnv("RTD_MASTER_VOLUME"); ok && v != "" {
		volume, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("RTD_MASTER_VOLUME: %w", err)
		}
		if volume < 0 || volume > 100 {
			return cfg, fmt.Errorf("RTD_MASTER_VOLUME: %d out of range 0-100", volume)
		}
		cfg.Volume = float64(volume) / 100
	}

	if v, ok := os.LookupEnv("RTD_SAMPLE_RATE"); ok && v != "" {
		rate, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("RTD_SAMPLE_RATE: %w", err)
		}
		if rate <= 0 {
			return cfg, fmt.Errorf("RTD_SAMPLE_RATE: %d must be positive", rate)
		}
		cfg.SampleRate = rate
	}

	return cfg, nil
}
