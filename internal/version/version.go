package version

// Overridden at build time via -ldflags "-X tabadigit-esl/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)
