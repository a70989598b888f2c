// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestCommitFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{"no vcs", nil, "unknown"},
		{
			"clean",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}, {Key: "vcs.modified", Value: "false"}},
			"0123456",
		},
		{
			"dirty",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}, {Key: "vcs.modified", Value: "true"}},
			"0123456-dirty",
		},
		{"short revision", []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}, "abc"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := commitFromSettings(test.settings); got != test.want {
				t.Errorf("commitFromSettings() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestInjectedCommitWins(t *testing.T) {
	previous := GitCommit
	GitCommit = "feedbee"
	defer func() { GitCommit = previous }()

	if got := Commit(); got != "feedbee" {
		t.Errorf("Commit() = %q, want feedbee", got)
	}
	if !strings.HasPrefix(Info(), Version+" (feedbee, ") {
		t.Errorf("Info() = %q", Info())
	}
	if !strings.Contains(Full(), "Platform: ") {
		t.Errorf("Full() = %q", Full())
	}
}
