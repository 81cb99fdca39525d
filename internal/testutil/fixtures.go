package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixtures holds leveling texts shared by several tests.
var Fixtures = struct {
	// Basic ability: five ranks and one ratio
	BasicLeveling string
	// Ultimate: three ranks
	UltimateLeveling string
	// Cost made of two terms
	SplitCost string
}{
	BasicLeveling:    "Magic Damage: 80 / 125 / 170 / 215 / 260 (+ 60% AP)",
	UltimateLeveling: "Magic Damage: 300 / 400 / 500 (+ 120% AP)",
	SplitCost:        "50 + 10%",
}

// WriteTree creates files under a fresh temp dir and returns the dir.
// Keys are slash-separated relative paths.
func WriteTree(t testing.TB, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for path, content := range files {
		fullPath := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			t.Fatalf("creating dirs for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return dir
}

// AbilityPage renders a minimal ability data page: the name row followed by
// parameter/value pairs.
func AbilityPage(name string, params ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><table>\n")
	b.WriteString("<tr><th>Parameter</th><th>Value</th><th>Description</th></tr>\n")
	b.WriteString("<tr><td>1</td><td>" + name + "</td><td></td></tr>\n")
	for i := 0; i+1 < len(params); i += 2 {
		b.WriteString("<tr><td>" + params[i] + "</td><td>" + params[i+1] + "</td><td></td></tr>\n")
	}
	b.WriteString("</table></body></html>")
	return b.String()
}
