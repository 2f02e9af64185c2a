// Package quantity resolves how many copies of each card image to print.
package quantity

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// namePattern matches an embedded quantity suffix like "goblin-x3.png".
var namePattern = regexp.MustCompile(`-x(\d+)`)

// Map associates image base names (without extension) with print quantities.
// It is built per directory from an optional sidecar file.
type Map map[string]int

// IsSidecar reports whether filename looks like a quantity sidecar file.
// The match is case-insensitive: a name starting with "cards" or "quantities"
// and ending in ".txt".
func IsSidecar(filename string) bool {
	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".txt") {
		return false
	}
	return strings.HasPrefix(lower, "cards") || strings.HasPrefix(lower, "quantities")
}

// ParseSidecar reads a sidecar file of "name,quantity" lines into a Map.
// Lines without a comma are skipped. Lines whose quantity is not a positive
// integer are skipped with a warning. If the file cannot be read at all, a
// warning is printed and an empty map is returned so the run can continue.
func ParseSidecar(path string) Map {
	qtys := make(Map)

	file, err := os.Open(path)
	if err != nil {
		warnf("Failed to read quantity file %s: %v", path, err)
		return qtys
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, ",") {
			continue
		}

		name, rest, _ := strings.Cut(line, ",")
		name = strings.TrimSpace(name)
		qty, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || qty < 1 {
			warnf("Ignoring quantity %q for %q in %s: not a positive integer", strings.TrimSpace(rest), name, path)
			continue
		}

		qtys[name] = qty
	}
	if err := scanner.Err(); err != nil {
		warnf("Failed to parse quantity file %s: %v", path, err)
		return make(Map)
	}

	return qtys
}

// FromFilename extracts an embedded "-x<N>" quantity from a filename,
// defaulting to 1 when the pattern is absent.
func FromFilename(filename string) int {
	match := namePattern.FindStringSubmatch(filename)
	if match == nil {
		return 1
	}

	qty, err := strconv.Atoi(match[1])
	if err != nil {
		return 1
	}
	return qty
}

// Resolve returns the print quantity for an image filename. A sidecar entry
// for the file's base name wins over an embedded "-x<N>" pattern, which in
// turn wins over the default of 1.
func (m Map) Resolve(filename string) int {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if qty, ok := m[base]; ok {
		return qty
	}
	return FromFilename(filename)
}

func warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("Warning:"), fmt.Sprintf(format, args...))
}
