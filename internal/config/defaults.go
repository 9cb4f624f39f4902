package config

const (
	defaultOutDir      = "~/.local/share/lumen/site"
	defaultLogDir      = "~/.local/share/lumen/logs"
	defaultSiteTitle   = "Interactive 3D Light Direction"
	defaultImgPrefix   = "data"
	defaultPlotsPrefix = "plots_embedded"
	defaultBallsPrefix = "balls"
	defaultGoodMAE     = 1.0
	defaultBadMAE      = 8.0
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutDir: defaultOutDir,
			LogDir: defaultLogDir,
		},
		Site: Site{
			Title:       defaultSiteTitle,
			ImgPrefix:   defaultImgPrefix,
			PlotsPrefix: defaultPlotsPrefix,
			BallsPrefix: defaultBallsPrefix,
		},
		Confidence: Confidence{
			GoodMAE: defaultGoodMAE,
			BadMAE:  defaultBadMAE,
		},
		Pipeline: Pipeline{
			Normalize: true,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
