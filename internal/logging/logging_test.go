// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", "json", &buf)
	require.NoError(t, err)

	l.WithOp("sum").LogDispatch(context.Background())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "dispatch", rec["msg"])
	require.Equal(t, "sum", rec["op"])
	require.Contains(t, rec, "width_bytes")
}

func TestNewTextLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", "text", &buf)
	require.NoError(t, err)

	l.LogDispatch(context.Background())
	require.Empty(t, buf.String())

	l.LogVerify(context.Background(), 10, 0, nil)
	require.Contains(t, buf.String(), "verify completed")

	buf.Reset()
	l.LogVerify(context.Background(), 10, 2, errors.New("mismatch"))
	require.Contains(t, buf.String(), "level=ERROR")
	require.Contains(t, buf.String(), "failed=2")
}

func TestNewInvalid(t *testing.T) {
	_, err := New("info", "xml", nil)
	require.Error(t, err)
	_, err = New("trace", "text", nil)
	require.Error(t, err)

	require.True(t, ValidFormat("JSON"))
	require.False(t, ValidFormat("xml"))
}

func TestNoop(t *testing.T) {
	Noop().LogVerify(context.Background(), 1, 1, errors.New("ignored"))
}
