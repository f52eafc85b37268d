// Package promote copies a release-worthy subset of a source checkout
// into a sibling checkout for the next deployment tier and records the
// run in a Markdown log under the destination.
package promote

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogPath is where a promotion run is recorded, relative to the
// destination root.
const LogPath = "docs/promotions/PROMOTION_LOG_STAGE.md"

// whitelist names the top-level paths that ship during a promotion.
var whitelist = []string{
	"cmd",
	"internal",
	"docs",
	"data",
	"go.mod",
	"go.sum",
	"Makefile",
	"Dockerfile",
	"docker-compose.yml",
}

// blacklist names path components that never ship, no matter where
// they appear. Entries win over the whitelist and over Markdown files.
var blacklist = []string{
	".git",
	".hg",
	"node_modules",
	"vendor",
	"dist",
	"build",
	"bin",
	".vscode",
	".idea",
	".DS_Store",
}

// selfDir holds the promote command's own sources, which never copy
// themselves forward.
const selfDir = "cmd/promote"

// Options configures a promotion run.
type Options struct {
	Source string
	Dest   string
}

// Result reports what a promotion run did.
type Result struct {
	Copied   []string
	Failures map[string]error
}

// Include reports whether the file at rel (a slash-separated path
// relative to the source root) ships during promotion. Blacklisted
// components always exclude; Markdown files are otherwise always
// included; everything else must sit under a whitelisted top-level
// path.
func Include(rel string) bool {
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == "" {
		return false
	}

	for _, part := range strings.Split(rel, "/") {
		for _, b := range blacklist {
			if part == b {
				return false
			}
		}
		if strings.HasPrefix(part, ".env") {
			return false
		}
	}

	if rel == selfDir || strings.HasPrefix(rel, selfDir+"/") {
		return false
	}

	if strings.HasSuffix(rel, ".md") {
		return true
	}

	for _, w := range whitelist {
		if rel == w || strings.HasPrefix(rel, w+"/") {
			return true
		}
	}
	return false
}

// Run copies the included subset of opts.Source into opts.Dest and
// appends a log entry under the destination. Individual copy failures
// are collected rather than aborting the run; only a bad source or
// destination is a hard error.
func Run(opts Options) (*Result, error) {
	src, err := filepath.Abs(opts.Source)
	if err != nil {
		return nil, err
	}
	dest, err := filepath.Abs(opts.Dest)
	if err != nil {
		return nil, err
	}

	if src == dest {
		return nil, fmt.Errorf("source and destination are the same checkout: %s", src)
	}
	info, err := os.Stat(dest)
	if err != nil {
		return nil, fmt.Errorf("destination checkout missing: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("destination is not a directory: %s", dest)
	}

	result := &Result{Failures: make(map[string]error)}

	err = filepath.WalkDir(src, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			result.Failures[path] = walkErr
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			result.Failures[path] = err
			return nil
		}
		if d.IsDir() {
			// Prune blacklisted trees early; files inside whitelisted
			// dirs are re-checked individually anyway.
			if rel != "." && !Include(rel) && !mayContainIncluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !Include(rel) {
			return nil
		}
		if err := copyFile(path, filepath.Join(dest, rel)); err != nil {
			result.Failures[rel] = err
			return nil
		}
		result.Copied = append(result.Copied, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.Copied)

	if err := appendLog(dest, result); err != nil {
		return result, fmt.Errorf("promotion copied but log update failed: %w", err)
	}

	log.Printf("Promotion complete: %d files copied, %d failures", len(result.Copied), len(result.Failures))
	return result, nil
}

// mayContainIncluded reports whether a non-included directory can
// still hold included files. Markdown ships from anywhere, so only a
// blacklisted directory is safe to prune.
func mayContainIncluded(rel string) bool {
	return Include(rel + "/keep.md")
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// appendLog records the run in LogPath under dest, creating the file
// and its directory with a header when absent.
func appendLog(dest string, result *Result) error {
	logFile := filepath.Join(dest, filepath.FromSlash(LogPath))
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return err
	}

	_, statErr := os.Stat(logFile)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	var b strings.Builder
	if fresh {
		b.WriteString("# Stage Promotion Log\n")
	}
	b.WriteString(fmt.Sprintf("\n## %s\n\n", time.Now().UTC().Format("2006-01-02 15:04 UTC")))
	b.WriteString(fmt.Sprintf("- Files copied: %d\n", len(result.Copied)))
	b.WriteString("- Skipped: credentials, VCS metadata, dependency caches, build output, editor state\n")
	if len(result.Failures) > 0 {
		b.WriteString(fmt.Sprintf("- Copy failures: %d\n", len(result.Failures)))
		failed := make([]string, 0, len(result.Failures))
		for rel := range result.Failures {
			failed = append(failed, rel)
		}
		sort.Strings(failed)
		for _, rel := range failed {
			b.WriteString(fmt.Sprintf("  - `%s`: %v\n", rel, result.Failures[rel]))
		}
	}

	_, err = f.WriteString(b.String())
	return err
}
