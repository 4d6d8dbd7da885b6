package stdmwatermark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark_BitRebasesSignConvention(t *testing.T) {
	m := Mark{{1, -1}, {-1, 1}}
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 1, m.Bit(0, 0))
	assert.Equal(t, 0, m.Bit(0, 1))
	assert.Equal(t, 0, m.flatBit(1))
	assert.Equal(t, 1, m.flatBit(3))
}

func TestMark_WidthOfEmptyMarkIsZero(t *testing.T) {
	var m Mark
	assert.Equal(t, 0, m.Width())
	assert.Equal(t, 0, m.Height())
}
