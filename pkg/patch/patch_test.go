package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Unchanged(t *testing.T) {
	f := Unchanged[string]()

	assert.True(t, f.IsUnchanged())
	assert.False(t, f.IsSet())
	assert.False(t, f.IsClear())

	_, ok := f.Value()
	assert.False(t, ok)
}

func TestField_Set(t *testing.T) {
	f := Set("banner-123")

	assert.False(t, f.IsUnchanged())
	assert.True(t, f.IsSet())
	assert.False(t, f.IsClear())

	v, ok := f.Value()
	assert.True(t, ok)
	assert.Equal(t, "banner-123", v)
}

func TestField_Clear(t *testing.T) {
	f := Clear[int]()

	assert.False(t, f.IsUnchanged())
	assert.False(t, f.IsSet())
	assert.True(t, f.IsClear())

	_, ok := f.Value()
	assert.False(t, ok)
}

func TestField_ZeroValueIsUnchanged(t *testing.T) {
	var f Field[string]
	assert.True(t, f.IsUnchanged())
}

func TestField_SetZeroValueIsStillSet(t *testing.T) {
	// Setting a zero value must be distinguishable from not setting at all
	f := Set("")
	assert.True(t, f.IsSet())

	v, ok := f.Value()
	assert.True(t, ok)
	assert.Equal(t, "", v)
}
