package horizon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseProfile reads a plain-text horizon file: one "azimuth altitude"
// pair per line, whitespace separated. Lines starting with '#' and blank
// lines are ignored. Azimuths are normalized and the points sorted by the
// Profile constructor, so the returned Profile always satisfies the
// ordering invariant the interpolation expects.
func ParseProfile(r io.Reader) (*Profile, error) {
	var points []Point

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("horizon line %d: want \"azimuth altitude\", got %q", lineNo, line)
		}

		az, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("horizon line %d: bad azimuth %q: %w", lineNo, fields[0], err)
		}
		alt, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("horizon line %d: bad altitude %q: %w", lineNo, fields[1], err)
		}

		points = append(points, Point{AzDeg: az, AltDeg: alt})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read horizon file: %w", err)
	}

	return NewProfile(points), nil
}

// LoadProfile parses a horizon file from disk.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open horizon file: %w", err)
	}
	defer f.Close()
	return ParseProfile(f)
}
