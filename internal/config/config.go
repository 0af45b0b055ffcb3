package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config holds the tunables shared by the CLI and the HTTP server.
type Config struct {
	// AIThreshold is the minimum fuzzy score for AI-authored JSON imports.
	AIThreshold float64
	// VoiceThreshold is the looser minimum used for voice transcripts.
	VoiceThreshold float64
	// KeepDuplicateSets disables exact-duplicate collapsing in the voice
	// parser's sequential strategy.
	KeepDuplicateSets bool
	// Addr is the HTTP listen address for serve mode.
	Addr string
	// RequestsPerSecond throttles the HTTP API.
	RequestsPerSecond int
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		AIThreshold:       0.5,
		VoiceThreshold:    0.4,
		KeepDuplicateSets: false,
		Addr:              ":8417",
		RequestsPerSecond: 20,
	}
}

// Load reads an ini config file, falling back to defaults for absent keys.
func Load(path string) (Config, error) {
	c := Default()
	cfg, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}

	m := cfg.Section("match")
	c.AIThreshold = m.Key("ai_threshold").MustFloat64(c.AIThreshold)
	c.VoiceThreshold = m.Key("voice_threshold").MustFloat64(c.VoiceThreshold)

	v := cfg.Section("voice")
	c.KeepDuplicateSets = !v.Key("collapse_duplicates").MustBool(!c.KeepDuplicateSets)

	s := cfg.Section("server")
	c.Addr = s.Key("addr").MustString(c.Addr)
	c.RequestsPerSecond = s.Key("requests_per_second").MustInt(c.RequestsPerSecond)

	return c, nil
}
