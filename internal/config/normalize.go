package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSite()
	c.normalizeConfidence()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.QualityCSV) == "" {
		if value, ok := os.LookupEnv("LUMEN_QUALITY_CSV"); ok {
			c.Paths.QualityCSV = strings.TrimSpace(value)
		}
	}

	var err error
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"paths.dataset", &c.Paths.Dataset},
		{"paths.quality_csv", &c.Paths.QualityCSV},
		{"paths.images_dir", &c.Paths.ImagesDir},
		{"paths.plots_dir", &c.Paths.PlotsDir},
		{"paths.balls_dir", &c.Paths.BallsDir},
		{"paths.out_dir", &c.Paths.OutDir},
		{"paths.log_dir", &c.Paths.LogDir},
	} {
		if *field.value, err = expandPath(strings.TrimSpace(*field.value)); err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
	}
	return nil
}

func (c *Config) normalizeSite() {
	c.Site.Title = strings.TrimSpace(c.Site.Title)
	if c.Site.Title == "" {
		c.Site.Title = defaultSiteTitle
	}
	c.Site.ImgPrefix = strings.Trim(strings.TrimSpace(c.Site.ImgPrefix), "/")
	if c.Site.ImgPrefix == "" {
		c.Site.ImgPrefix = defaultImgPrefix
	}
	c.Site.PlotsPrefix = strings.Trim(strings.TrimSpace(c.Site.PlotsPrefix), "/")
	if c.Site.PlotsPrefix == "" {
		c.Site.PlotsPrefix = defaultPlotsPrefix
	}
	c.Site.BallsPrefix = strings.Trim(strings.TrimSpace(c.Site.BallsPrefix), "/")
	if c.Site.BallsPrefix == "" {
		c.Site.BallsPrefix = defaultBallsPrefix
	}
}

func (c *Config) normalizeConfidence() {
	c.Confidence.ExposureTag = strings.ToLower(strings.TrimSpace(c.Confidence.ExposureTag))
	if c.Confidence.GoodMAE == 0 && c.Confidence.BadMAE == 0 {
		c.Confidence.GoodMAE = defaultGoodMAE
		c.Confidence.BadMAE = defaultBadMAE
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
