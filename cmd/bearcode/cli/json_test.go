// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSON_NilSlice(t *testing.T) {
	var buffer bytes.Buffer
	var values []string
	if err := WriteJSON(&buffer, values); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if got := strings.TrimSpace(buffer.String()); got != "[]" {
		t.Errorf("WriteJSON(nil slice) = %q, want []", got)
	}
}

func TestWriteJSON_NoHTMLEscaping(t *testing.T) {
	var buffer bytes.Buffer
	if err := WriteJSON(&buffer, map[string]string{"text": "<啊哒>&"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buffer.String(), `"<啊哒>&"`) {
		t.Errorf("WriteJSON() = %q, want unescaped text", buffer.String())
	}
}
