package main

import (
	"log/slog"
	"testing"
)

func TestBufferLogLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"warn", slog.LevelWarn, true},
		{"info", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := bufferLogLevel(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("bufferLogLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
