package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

// argbOnly hides the engine's direct RGBA path.
type argbOnly struct{ core.Sim }

func TestFrameUsesDirectRGBAPath(t *testing.T) {
	l := life.New(3, 1, life.Dead, life.WithBorderMode(life.AsIs))
	l.SetSolidColor(life.Alive, life.Color{R: 9, G: 8, B: 7})
	require.NoError(t, l.SetState(2, 0, life.Alive))
	var _ RGBARenderer = l

	direct := make([]byte, 12)
	require.NoError(t, frame(l, make([]uint32, 3), direct))
	converted := make([]byte, 12)
	require.NoError(t, frame(argbOnly{l}, make([]uint32, 3), converted))

	assert.Equal(t, direct, converted)
	assert.Equal(t, []byte{9, 8, 7, 0xFF}, direct[8:])
}

func TestFrameReportsShortBuffer(t *testing.T) {
	l := life.New(3, 3, life.Dead)
	err := frame(l, make([]uint32, 9), make([]byte, 8))
	assert.ErrorIs(t, err, life.ErrBufferTooSmall)
	err = frame(argbOnly{l}, make([]uint32, 2), make([]byte, 36))
	assert.ErrorIs(t, err, life.ErrBufferTooSmall)
}

func TestFillRGBAUnpacksEngineColors(t *testing.T) {
	l := life.New(2, 1, life.Dead, life.WithBorderMode(life.AsIs))
	l.SetSolidColor(life.Alive, life.Color{R: 0xAA, G: 0xBB, B: 0xCC})
	l.SetSolidColor(life.Dead, life.Color{R: 1, G: 2, B: 3})
	if err := l.SetState(1, 0, life.Alive); err != nil {
		t.Fatal(err)
	}

	argb := make([]uint32, 2)
	if err := l.UpdateImage(argb); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 8)
	fillRGBA(buf, argb)

	want := make([]byte, 8)
	if err := l.UpdateRGBA(want); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, want, buf)
	assert.Equal(t, []byte{1, 2, 3, 0xFF, 0xAA, 0xBB, 0xCC, 0xFF}, buf)
}

func TestCellAt(t *testing.T) {
	x, y, ok := CellAt(7, 3, 3, 4, 4)
	assert.True(t, ok)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)

	_, _, ok = CellAt(12, 0, 3, 4, 4)
	assert.False(t, ok)
	_, _, ok = CellAt(-1, 0, 3, 4, 4)
	assert.False(t, ok)

	x, y, ok = CellAt(5, 6, 0, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, 5, x)
	assert.Equal(t, 6, y)
}
