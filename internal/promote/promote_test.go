package promote_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fitstack/fittrack/internal/promote"
)

func TestInclude(t *testing.T) {
	cases := []struct {
		rel  string
		want bool
	}{
		{"cmd/server/main.go", true},
		{"internal/services/store.go", true},
		{"go.mod", true},
		{"Dockerfile", true},
		{"docker-compose.yml", true},

		// Markdown ships from anywhere
		{"README.md", true},
		{"notes/scratch.md", true},

		// Blacklisted components beat the whitelist
		{".git/config", false},
		{"internal/node_modules/pkg/index.js", false},
		{"cmd/bin/tool", false},
		{"docs/.DS_Store", false},

		// Blacklist beats the Markdown rule too
		{"node_modules/left-pad/README.md", false},

		// Credentials never ship, in any directory
		{".env", false},
		{".env.local", false},
		{"internal/.env.test", false},

		// The promote command never copies itself forward
		{"cmd/promote/main.go", false},
		{"cmd/promote", false},

		// Outside the whitelist, non-Markdown stays behind
		{"scratch.txt", false},
		{"tools/inspect_schema.go", false},
		{".", false},
		{"", false},
	}

	for _, c := range cases {
		if got := promote.Include(c.rel); got != c.want {
			t.Errorf("Include(%q) = %v, want %v", c.rel, got, c.want)
		}
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

func TestRunCopiesSubsetAndLogs(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	writeFile(t, src, "cmd/server/main.go", "package main\n")
	writeFile(t, src, "cmd/promote/main.go", "package main\n")
	writeFile(t, src, "internal/services/store.go", "package services\n")
	writeFile(t, src, "go.mod", "module example\n")
	writeFile(t, src, "README.md", "# readme\n")
	writeFile(t, src, ".env", "SECRET=1\n")
	writeFile(t, src, ".git/config", "[core]\n")
	writeFile(t, src, "scratch.txt", "notes\n")

	result, err := promote.Run(promote.Options{Source: src, Dest: dest})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Failures) != 0 {
		t.Errorf("Unexpected failures: %v", result.Failures)
	}

	want := []string{"README.md", "cmd/server/main.go", "go.mod", "internal/services/store.go"}
	if len(result.Copied) != len(want) {
		t.Fatalf("Copied %v, want %v", result.Copied, want)
	}
	for i, rel := range want {
		if result.Copied[i] != rel {
			t.Errorf("Copied[%d] = %q, want %q", i, result.Copied[i], rel)
		}
	}

	for _, rel := range want {
		if _, err := os.Stat(filepath.Join(dest, filepath.FromSlash(rel))); err != nil {
			t.Errorf("Expected %s in destination: %v", rel, err)
		}
	}
	for _, rel := range []string{".env", ".git/config", "scratch.txt", "cmd/promote/main.go"} {
		if _, err := os.Stat(filepath.Join(dest, filepath.FromSlash(rel))); !os.IsNotExist(err) {
			t.Errorf("Expected %s to stay behind, stat err: %v", rel, err)
		}
	}

	logBytes, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(promote.LogPath)))
	if err != nil {
		t.Fatalf("Expected a promotion log: %v", err)
	}
	logText := string(logBytes)
	if !strings.HasPrefix(logText, "# Stage Promotion Log\n") {
		t.Errorf("Log missing header:\n%s", logText)
	}
	if !strings.Contains(logText, "- Files copied: 4\n") {
		t.Errorf("Log missing copy count:\n%s", logText)
	}
}

func TestRunAppendsToExistingLog(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, src, "go.mod", "module example\n")

	if _, err := promote.Run(promote.Options{Source: src, Dest: dest}); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	if _, err := promote.Run(promote.Options{Source: src, Dest: dest}); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	logBytes, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(promote.LogPath)))
	if err != nil {
		t.Fatalf("Expected a promotion log: %v", err)
	}
	logText := string(logBytes)
	if strings.Count(logText, "# Stage Promotion Log") != 1 {
		t.Errorf("Header must appear once:\n%s", logText)
	}
	if strings.Count(logText, "## ") != 2 {
		t.Errorf("Expected two run entries:\n%s", logText)
	}
}

func TestRunRejectsBadEndpoints(t *testing.T) {
	src := t.TempDir()

	if _, err := promote.Run(promote.Options{Source: src, Dest: src}); err == nil {
		t.Error("Expected error when source and destination are the same")
	}

	missing := filepath.Join(src, "does-not-exist")
	if _, err := promote.Run(promote.Options{Source: src, Dest: missing}); err == nil {
		t.Error("Expected error for a missing destination")
	}

	file := filepath.Join(src, "a-file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := promote.Run(promote.Options{Source: src, Dest: file}); err == nil {
		t.Error("Expected error when destination is a file")
	}
}

func TestRunPreservesFileMode(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, src, "cmd/server/main.go", "package main\n")
	script := filepath.Join(src, "cmd", "run.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	if _, err := promote.Run(promote.Options{Source: src, Dest: dest}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dest, "cmd", "run.sh"))
	if err != nil {
		t.Fatalf("Expected copied script: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("Expected mode 0755, got %v", info.Mode().Perm())
	}
}
