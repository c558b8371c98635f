package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestParseArgsRecognizesOptionsAndFile(t *testing.T) {
	opts, err := parseArgs([]string{"-f", "json", "--config=/tmp/chatfmt.json", "-p", "lesson.txt"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if opts.format != "json" {
		t.Fatalf("format = %q, want %q", opts.format, "json")
	}
	if opts.configPath != "/tmp/chatfmt.json" {
		t.Fatalf("configPath = %q", opts.configPath)
	}
	if !opts.preview {
		t.Fatalf("preview flag not set")
	}
	if opts.file != "lesson.txt" {
		t.Fatalf("file = %q, want %q", opts.file, "lesson.txt")
	}
}

func TestParseArgsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown option", args: []string{"--frobnicate"}},
		{name: "format without value", args: []string{"--format"}},
		{name: "config without value", args: []string{"-c"}},
		{name: "second positional argument", args: []string{"a.txt", "b.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(tt.args); err == nil {
				t.Fatalf("expected usage error for %v", tt.args)
			}
		})
	}
}

func TestParseArgsDashReadsStdin(t *testing.T) {
	opts, err := parseArgs([]string{"-"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if opts.file != "-" {
		t.Fatalf("file = %q, want %q", opts.file, "-")
	}
	if got := sourceLabel(opts.file); got != "stdin" {
		t.Fatalf("sourceLabel = %q, want %q", got, "stdin")
	}
}

func TestSourceLabelUsesBaseName(t *testing.T) {
	if got := sourceLabel("/tmp/lessons/intro.txt"); got != "intro.txt" {
		t.Fatalf("sourceLabel = %q, want %q", got, "intro.txt")
	}
	if got := sourceLabel(""); got != "stdin" {
		t.Fatalf("sourceLabel = %q, want %q", got, "stdin")
	}
}

func TestWriteOutputFormats(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		message string
		want    string
	}{
		{
			name:    "html",
			format:  "html",
			message: "hi **there**",
			want:    "hi <strong>there</strong>\n",
		},
		{
			name:    "text",
			format:  "text",
			message: "hi **there**",
			want:    "hi there\n",
		},
		{
			name:    "json",
			format:  "json",
			message: "hi",
			want:    "[\n  {\n    \"kind\": \"prose\",\n    \"content\": \"hi\"\n  }\n]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeOutput(&buf, tt.format, tt.message); err != nil {
				t.Fatalf("writeOutput failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadConfigRequiresExplicitFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing config file named on the command line")
	}
}
