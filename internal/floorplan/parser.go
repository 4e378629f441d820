// Package floorplan extracts room name/dimension/area tuples from the OCR
// text of architectural drawings. It is a best-effort heuristic: malformed
// dimension text yields a zero area, never an error.
package floorplan

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hrunx/es2square/internal/entity"
)

// RoomExtract is one parsed room label. Area is square feet-derived and
// already rounded to two decimals; zero means no usable dimensions.
type RoomExtract struct {
	Name       string             `json:"name"`
	Dimensions *entity.Dimensions `json:"dimensions,omitempty"`
	Area       float64            `json:"area"`
}

// dimPat matches a single architectural dimension: 12, 12.5, 12', 12'-6",
// 12' 6", including the fraction glyphs used on scanned plans.
const dimPat = `\d+(?:'\s*)?(?:-|\s+)?(?:\d+(?:"|½|¼|¾|\.5)?)?["']?`

var (
	roomRe = regexp.MustCompile(`(?m)([A-Z][A-Z\d/ ]+?)(?:\s*(` + dimPat + `)\s*[xX×]\s*(` + dimPat + `)|$)`)

	// connector tokens on drawings that look like labels but are not rooms
	skipRe = regexp.MustCompile(`^(UP|DOWN|OPENING|DRIVE|WAY)$`)
	// structural annotations, rejected case-insensitively
	structuralRe = regexp.MustCompile(`(?i)^(WALL|FLOOR|CEILING|CLG|SLAB)$`)

	feetInchesRe = regexp.MustCompile(`(\d+)'-?(\d+(?:½|¼|¾|\.5)?)?(?:"|'')?`)
	decimalRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

	quoteCleaner = strings.NewReplacer("“", `"`, "”", `"`, "„", `"`)
)

// Parse scans OCR text for uppercase room labels, optionally followed by a
// WIDTH x LENGTH pair. The result may be empty; it never contains an entry
// with a negative area or a structural name.
func Parse(text string) []RoomExtract {
	var rooms []RoomExtract

	for _, m := range roomRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if skipRe.MatchString(name) {
			continue
		}
		if structuralRe.MatchString(name) {
			continue
		}

		width := cleanDimension(m[2])
		length := cleanDimension(m[3])

		w := toDecimalFeet(width)
		l := toDecimalFeet(length)
		area := 0.0
		if w > 0 && l > 0 {
			area = math.Round(w*l*100) / 100
		}

		r := RoomExtract{Name: name, Area: area}
		if width != "" && length != "" {
			r.Dimensions = &entity.Dimensions{Width: width, Length: length}
		}
		rooms = append(rooms, r)
	}

	return rooms
}

func cleanDimension(dim string) string {
	dim = strings.Join(strings.Fields(dim), "")
	return quoteCleaner.Replace(dim)
}

// toDecimalFeet converts "12'-6\"" style notation to decimal feet
// (feet + inches/12). A fraction glyph resolves the whole inch part.
// Unparseable input yields 0.
func toDecimalFeet(dim string) float64 {
	if dim == "" {
		return 0
	}

	if m := feetInchesRe.FindStringSubmatch(dim); m != nil {
		feet, err := strconv.Atoi(m[1])
		if err != nil {
			return 0
		}
		inches := 0.0
		if m[2] != "" {
			switch {
			case strings.Contains(m[2], "½"):
				inches = 0.5
			case strings.Contains(m[2], "¼"):
				inches = 0.25
			case strings.Contains(m[2], "¾"):
				inches = 0.75
			default:
				inches, _ = strconv.ParseFloat(m[2], 64)
			}
		}
		return float64(feet) + inches/12
	}

	if m := decimalRe.FindStringSubmatch(dim); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0
		}
		return v
	}

	return 0
}

// ValidRoomName rejects names that are empty, purely numeric, or the
// placeholder emitted by older extractions.
func ValidRoomName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "unnamed room") {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

// IsFloorPlan guesses whether a document is a floor plan from its file name
// and OCR text.
func IsFloorPlan(fileName, text string) bool {
	lower := strings.ToLower(fileName)
	if strings.Contains(lower, "floor") || strings.Contains(lower, "plan") {
		return true
	}
	return strings.Contains(text, "BEDROOM") ||
		strings.Contains(text, "LIVING") ||
		strings.Contains(text, "KITCHEN")
}
