package composer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Erotemic/ahoy/internal/core/ports/driven"
)

// Insertion markers. When both are present in the existing file only the
// region between them is replaced; the rest of the file is untouched.
const (
	StartTag = "# <AUTOGEN_INIT>"
	EndTag   = "# </AUTOGEN_INIT>"
)

// Ensure Patcher implements the interface.
var _ driven.InitPatcher = (*Patcher)(nil)

// Patcher merges generated text into existing aggregator files and
// writes the result atomically.
type Patcher struct{}

// NewPatcher creates an init-file patcher.
func NewPatcher() *Patcher {
	return &Patcher{}
}

// Merge combines existing file content with the generated block. With
// explicit markers the tagged region is replaced; otherwise everything
// up to the last leading comment, docstring or __future__ import is
// preserved and the generated block follows it.
func (*Patcher) Merge(existing, generated string) string {
	generated = strings.TrimRight(generated, "\n")

	if body, ok := mergeTagged(existing, generated); ok {
		return body
	}

	preamble := preserveDocPreamble(existing)
	if preamble == "" {
		return generated + "\n"
	}
	return preamble + "\n" + generated + "\n"
}

// Write atomically replaces the file at path. The temp file lands in the
// same directory so the final rename cannot cross filesystems.
func (*Patcher) Write(path, text string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// mergeTagged replaces the region between the insertion markers, keeping
// the marker lines themselves.
func mergeTagged(existing, generated string) (string, bool) {
	lines := strings.Split(existing, "\n")
	start, end := -1, -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == StartTag && start < 0 {
			start = i
		}
		if trimmed == EndTag {
			end = i
		}
	}
	if start < 0 || end < 0 || end < start {
		return "", false
	}

	var merged []string
	merged = append(merged, lines[:start+1]...)
	merged = append(merged, strings.Split(generated, "\n")...)
	merged = append(merged, lines[end:]...)
	return strings.Join(merged, "\n"), true
}

// preserveDocPreamble returns the leading block of the file worth
// keeping: shebang, encoding cookies and other comments, a module
// docstring, and __future__ imports. Scanning stops at the first line of
// real code.
func preserveDocPreamble(existing string) string {
	lines := strings.Split(existing, "\n")
	lastKeep := -1
	inDocstring := false
	docstringDelim := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inDocstring {
			if strings.Contains(trimmed, docstringDelim) {
				inDocstring = false
				lastKeep = i
			}
			continue
		}

		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "#"):
			lastKeep = i
		case strings.HasPrefix(trimmed, `"""`), strings.HasPrefix(trimmed, "'''"):
			docstringDelim = trimmed[:3]
			// A one-line docstring opens and closes on the same line.
			if len(trimmed) >= 6 && strings.HasSuffix(trimmed, docstringDelim) {
				lastKeep = i
				continue
			}
			inDocstring = true
		case strings.HasPrefix(trimmed, "from __future__ import"):
			lastKeep = i
		default:
			if lastKeep < 0 {
				return ""
			}
			return strings.Join(lines[:lastKeep+1], "\n")
		}
	}
	if lastKeep < 0 {
		return ""
	}
	return strings.Join(lines[:lastKeep+1], "\n")
}
