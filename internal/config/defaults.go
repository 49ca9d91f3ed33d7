package config

const (
	defaultDataDir                = "~/.local/share/castmerge"
	defaultLogDir                 = "~/.local/share/castmerge/logs"
	defaultTMDBBaseURL            = "https://api.themoviedb.org/3"
	defaultTMDBLanguage           = "en-US"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
	defaultDetectionMovieLimit    = 500
	defaultDetectionMaxResults    = 50
	defaultDetectionMinConfidence = 0.7
	defaultCollaborationMinMovies = 2
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		TMDB: TMDB{
			Enabled:  false,
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		Detection: Detection{
			MovieLimit:    defaultDetectionMovieLimit,
			MaxResults:    defaultDetectionMaxResults,
			MinConfidence: defaultDetectionMinConfidence,
		},
		Collaboration: Collaboration{
			MinMovies: defaultCollaborationMinMovies,
		},
		Merge: Merge{
			PreserveAnalytics: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
