package config

import (
	"errors"
	"fmt"
	"strings"
)

var validExposureTags = map[string]struct{}{
	"": {}, "ev-00": {}, "ev-25": {}, "ev-50": {},
}

// Validate checks values the rest of the system cannot recover from.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.OutDir) == "" {
		return errors.New("paths.out_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must not be empty")
	}
	if _, ok := validExposureTags[c.Confidence.ExposureTag]; !ok {
		return fmt.Errorf("confidence.exposure_tag: unknown tag %q (expected ev-00, ev-25, or ev-50)", c.Confidence.ExposureTag)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
