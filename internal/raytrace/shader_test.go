package raytrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

func TestShaderListAddAssignsStableID(t *testing.T) {
	list := NewShaderList()
	id := list.Add(NewShader("red", NewLambert(vecmath.Vec3{1, 0, 0})))
	assert.NotZero(t, id)

	shader, ok := list.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, shader.ID)
	assert.Equal(t, "red", shader.Name)
}

func TestShaderListPreservesInsertionOrder(t *testing.T) {
	list := NewShaderList()
	a := list.Add(NewShader("a", NewLambert(vecmath.Vec3{})))
	b := list.Add(NewShader("b", NewLambert(vecmath.Vec3{})))
	c := list.Add(NewShader("c", NewLambert(vecmath.Vec3{})))

	assert.Equal(t, []ShaderID{a, b, c}, list.IDs())
}

func TestShaderListDeleteRemovesFromOrderAndMap(t *testing.T) {
	list := NewShaderList()
	a := list.Add(NewShader("a", NewLambert(vecmath.Vec3{})))
	b := list.Add(NewShader("b", NewLambert(vecmath.Vec3{})))

	require.NoError(t, list.Delete(a))
	assert.Equal(t, []ShaderID{b}, list.IDs())
	_, ok := list.Get(a)
	assert.False(t, ok)
}

func TestShaderListDeleteUnknownIDErrors(t *testing.T) {
	list := NewShaderList()
	assert.Error(t, list.Delete(ShaderID(12345)))
}

func TestDefaultShaderListHasOneBlackLambert(t *testing.T) {
	list := DefaultShaderList()
	require.Equal(t, 1, list.Len())
	shader, ok := list.Get(list.IDs()[0])
	require.True(t, ok)
	assert.Equal(t, "lambert", shader.BSDF.Name())
	base, _ := shader.BSDF.BaseColor().Constant()
	assert.Equal(t, vecmath.Vec3{0, 0, 0}, base)
}
