package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFeetInchesDimensions(t *testing.T) {
	rooms := Parse(`BEDROOM 12'-6" x 10'-0"`)

	assert.Len(t, rooms, 1)
	assert.Equal(t, "BEDROOM", rooms[0].Name)
	assert.InDelta(t, 125.0, rooms[0].Area, 0.001)
	assert.NotNil(t, rooms[0].Dimensions)
}

func TestParseMultipleRooms(t *testing.T) {
	text := "LIVING ROOM 20' x 15'\nKITCHEN 10' x 12'\nBATH 8' x 6'"
	rooms := Parse(text)

	assert.Len(t, rooms, 3)
	assert.Equal(t, "LIVING ROOM", rooms[0].Name)
	assert.InDelta(t, 300.0, rooms[0].Area, 0.001)
	assert.InDelta(t, 120.0, rooms[1].Area, 0.001)
	assert.InDelta(t, 48.0, rooms[2].Area, 0.001)
}

func TestParseFractionGlyphs(t *testing.T) {
	rooms := Parse(`CLOSET 6'6½ x 4'`)

	assert.Len(t, rooms, 1)
	// the glyph wins over the digit inches: 6'6½ reads as 6 feet ½ inch
	assert.InDelta(t, 24.17, rooms[0].Area, 0.001)
}

func TestParseSkipsConnectorTokens(t *testing.T) {
	for _, label := range []string{"UP", "DOWN", "OPENING", "DRIVE", "WAY"} {
		rooms := Parse(label + " 10' x 10'")
		assert.Empty(t, rooms, "connector %q must not become a room", label)
	}
}

func TestParseSkipsStructuralAnnotations(t *testing.T) {
	rooms := Parse("WALL 10' x 10'\nCEILING 8' x 8'")
	assert.Empty(t, rooms)
}

func TestParseMalformedDimensionsYieldNoRoom(t *testing.T) {
	rooms := Parse("BEDROOM abc x def")
	for _, r := range rooms {
		assert.Zero(t, r.Area)
	}
}

func TestParseEmptyText(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestToDecimalFeet(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`12'-6"`, 12.5},
		{`12'6`, 12.5},
		{`10'-0"`, 10.0},
		{`8'`, 8.0},
		{`9.5`, 9.5},
		{`6'3`, 6.25},
		{`6'¼`, 6.0},
		{``, 0},
		{`x`, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, toDecimalFeet(tt.in), 0.001, "input %q", tt.in)
	}
}

func TestValidRoomName(t *testing.T) {
	assert.True(t, ValidRoomName("BEDROOM"))
	assert.True(t, ValidRoomName("ROOM 2"))
	assert.False(t, ValidRoomName(""))
	assert.False(t, ValidRoomName("  "))
	assert.False(t, ValidRoomName("1234"))
	assert.False(t, ValidRoomName("Unnamed Room"))
}

func TestIsFloorPlan(t *testing.T) {
	assert.True(t, IsFloorPlan("house-floor-plan.pdf", ""))
	assert.True(t, IsFloorPlan("scan.png", "BEDROOM 12' x 10'"))
	assert.False(t, IsFloorPlan("electricity-bill.pdf", "Total due: 420 SAR"))
}
