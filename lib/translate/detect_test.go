// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package translate

import "testing"

func TestParseRange(t *testing.T) {
	tests := []struct {
		input string
		want  Range
	}{
		{"4e00-9fa5", Range{Low: 0x4E00, High: 0x9FA5}},
		{"U+3400-U+4DBF", Range{Low: 0x3400, High: 0x4DBF}},
		{"0x3007", Range{Low: 0x3007, High: 0x3007}},
	}
	for _, test := range tests {
		got, err := ParseRange(test.input)
		if err != nil {
			t.Errorf("ParseRange(%q): %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseRange(%q) = %v, want %v", test.input, got, test.want)
		}
	}

	for _, bad := range []string{"9fa5-4e00", "zz", "110000"} {
		if _, err := ParseRange(bad); err == nil {
			t.Errorf("ParseRange(%q) succeeded", bad)
		}
	}
}

func TestDetectorCounts(t *testing.T) {
	detector := NewDetector(DefaultSourceRanges, []rune("啊哒.。+~"))

	tests := []struct {
		input      string
		wantSource int
		wantBear   int
		wantMode   Mode
	}{
		{"", 0, 0, ModeReverse},
		{"你好", 2, 0, ModeForward},
		{"~.。+", 0, 4, ModeReverse},
		{"你好啊", 3, 1, ModeForward},
		{"啊啊啊", 3, 3, ModeReverse},
		{"abc", 0, 0, ModeReverse},
	}
	for _, test := range tests {
		source, bear := detector.Counts(test.input)
		if source != test.wantSource || bear != test.wantBear {
			t.Errorf("Counts(%q) = %d, %d; want %d, %d", test.input, source, bear, test.wantSource, test.wantBear)
		}
		if got := detector.Detect(test.input); got != test.wantMode {
			t.Errorf("Detect(%q) = %v, want %v", test.input, got, test.wantMode)
		}
	}
}

func TestDetectorCustomRanges(t *testing.T) {
	detector := NewDetector([]Range{{Low: 'a', High: 'z'}}, []rune("01"))
	if got := detector.Detect("abc01"); got != ModeForward {
		t.Errorf("Detect = %v, want forward", got)
	}
	if got := detector.Detect("ab010"); got != ModeReverse {
		t.Errorf("Detect = %v, want reverse", got)
	}
}
