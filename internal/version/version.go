package version

import (
	"fmt"
	"runtime"

	"go.uber.org/zap/zapcore"
)

// set through -ldflags at build time
var (
	GitCommit  string
	GitBranch  string
	GitSummary string
	BuildDate  string
	AppVersion string
)

type Version struct {
	GitCommit  string `json:"git_commit"`
	GitBranch  string `json:"git_branch"`
	GitSummary string `json:"git_summary"`
	BuildDate  string `json:"build_date"`
	AppVersion string `json:"app_version"`
	GoVersion  string `json:"go_version"`
}

func Current() *Version {
	return &Version{
		GitBranch:  GitBranch,
		GitCommit:  GitCommit,
		GitSummary: GitSummary,
		BuildDate:  BuildDate,
		AppVersion: AppVersion,
		GoVersion:  runtime.Version(),
	}
}

func (v *Version) String() string {
	return fmt.Sprintf("version=%s ref=%s branch=%s built=%s go=%s",
		v.AppVersion, v.GitCommit, v.GitBranch, v.BuildDate, v.GoVersion)
}

// MarshalLogObject lets the build info ride along as a single zap field.
func (v *Version) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("app_version", v.AppVersion)
	enc.AddString("git_commit", v.GitCommit)
	enc.AddString("git_branch", v.GitBranch)
	enc.AddString("build_date", v.BuildDate)
	enc.AddString("go_version", v.GoVersion)

	return nil
}
