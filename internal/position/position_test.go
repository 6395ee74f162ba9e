package position_test

import (
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/position"
	"github.com/stretchr/testify/assert"
)

func TestIndexAt(t *testing.T) {
	src := "body {\n  color: white;\n}\n/* é */ a{}"
	ix := position.NewIndex(src)

	tests := []struct {
		name   string
		offset int
		want   position.Position
	}{
		{"start", 0, position.Position{Line: 1, Column: 1}},
		{"second line", 9, position.Position{Line: 2, Column: 3}},
		{"line start", 23, position.Position{Line: 3, Column: 1}},
		{"after multibyte", 32, position.Position{Line: 4, Column: 7}},
		{"clamped", 1000, position.Position{Line: 4, Column: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.At(tt.offset))
		})
	}
}

func TestIndexLine(t *testing.T) {
	ix := position.NewIndex("one\r\ntwo  \nthree")

	assert.Equal(t, 3, ix.Lines())
	assert.Equal(t, "one", ix.Line(1))
	assert.Equal(t, "two  ", ix.Line(2))
	assert.Equal(t, "three", ix.Line(3))
	assert.Equal(t, "", ix.Line(4))
}

func TestShift(t *testing.T) {
	origin := position.Position{Line: 5, Column: 10}

	assert.Equal(t, position.Position{Line: 5, Column: 12},
		position.Shift(position.Position{Line: 1, Column: 3}, origin),
		"first line is offset by the region column")
	assert.Equal(t, position.Position{Line: 7, Column: 3},
		position.Shift(position.Position{Line: 3, Column: 3}, origin),
		"later lines keep their column")
}

func TestPositionBefore(t *testing.T) {
	a := position.Position{Line: 2, Column: 5}
	assert.True(t, a.Before(position.Position{Line: 2, Column: 6}))
	assert.True(t, a.Before(position.Position{Line: 3, Column: 1}))
	assert.False(t, a.Before(a))
	assert.Equal(t, "2:5", a.String())
}
