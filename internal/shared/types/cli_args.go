package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	ReportName     string
	ReportType     []string
	Dir            string
	Verbose        bool
	NoElevate      bool
	Elevated       bool
	DryRun         bool
	SkipPatch      bool
	SkipMonitors   bool
	SkipResolution bool
	SkipLaunch     bool
}
