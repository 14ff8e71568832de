package polaris

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertTransform(t *testing.T, want, got Transform) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Theta, got.Theta, eps, "theta")
}

var sampleTransforms = []Transform{
	{},
	{X: 10, Y: 5},
	{Theta: math.Pi / 2},
	{X: -3.5, Y: 2, Theta: 0.7},
	{X: 1, Y: -8, Theta: -2.9},
	{X: 25.4, Y: 0.0254, Theta: 7 * math.Pi},
}

func TestFromTranslation(t *testing.T) {
	assert.Equal(t, Transform{X: 1, Y: 2, Theta: 0}, FromTranslation(1, 2))
}

func TestFromRotation(t *testing.T) {
	assert.Equal(t, Transform{X: 0, Y: 0, Theta: 1}, FromRotation(1))
}

func TestComposeRotationFirst(t *testing.T) {
	got := Compose(FromTranslation(10, 5), FromRotation(math.Pi/2))
	assertTransform(t, Transform{X: -5, Y: 10, Theta: math.Pi / 2}, got)
}

func TestComposeIdentity(t *testing.T) {
	for _, tr := range sampleTransforms {
		assert.Equal(t, tr, Compose(tr, Identity()))
		assert.Equal(t, tr, Compose(Identity(), tr))
	}
}

func TestComposeAssociative(t *testing.T) {
	for _, a := range sampleTransforms {
		for _, b := range sampleTransforms {
			for _, c := range sampleTransforms {
				assertTransform(t, Compose(Compose(a, b), c), Compose(a, Compose(b, c)))
			}
		}
	}
}

func TestComposeNotCommutative(t *testing.T) {
	a := FromTranslation(10, 0)
	b := FromRotation(math.Pi / 2)
	assert.NotEqual(t, Compose(a, b), Compose(b, a))
}

func TestInverse(t *testing.T) {
	for _, tr := range sampleTransforms {
		assertTransform(t, Identity(), Compose(tr.Inverse(), tr))
		assertTransform(t, Identity(), Compose(tr, tr.Inverse()))
	}
}

func TestApply(t *testing.T) {
	x, y := FromRotation(math.Pi/2).Apply(1, 0)
	assert.InDelta(t, 0, x, eps)
	assert.InDelta(t, 1, y, eps)

	x, y = Transform{X: 10, Y: 20, Theta: math.Pi}.Apply(1, 2)
	assert.InDelta(t, 9, x, eps)
	assert.InDelta(t, 18, y, eps)
}

func TestDegrees(t *testing.T) {
	assert.InDelta(t, 90, FromRotation(math.Pi/2).Degrees(), eps)
}
