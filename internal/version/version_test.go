package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	originalVersion, originalBuildDate, originalGitCommit := Version, BuildDate, GitCommit
	defer func() {
		Version, BuildDate, GitCommit = originalVersion, originalBuildDate, originalGitCommit
	}()

	tests := []struct {
		name      string
		version   string
		buildDate string
		gitCommit string
		want      string
	}{
		{
			name:      "default values",
			version:   "dev",
			buildDate: "unknown",
			gitCommit: "unknown",
			want:      "dev (build: unknown, commit: unknown)",
		},
		{
			name:      "release",
			version:   "1.0.0",
			buildDate: "2026-10-01",
			gitCommit: "abc123d",
			want:      "1.0.0 (build: 2026-10-01, commit: abc123d)",
		},
		{
			name: "empty values",
			want: " (build: , commit: )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, BuildDate, GitCommit = tt.version, tt.buildDate, tt.gitCommit

			assert.Equal(t, tt.want, GetFullVersion())
			assert.Equal(t, tt.version, GetVersion())
		})
	}
}
