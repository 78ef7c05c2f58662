package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	assert.NotEmpty(t, l.Obstacles)
	require.Len(t, l.Enemies, 3)
	assert.Equal(t, []int{6, 2, 2}, l.EnemyWeights())
	assert.True(t, l.Bounds.Contains(0, 0))
	assert.False(t, l.Bounds.Contains(40, 0))
}

func TestParseLayoutErrors(t *testing.T) {
	type testCase struct {
		Name string
		Body string
	}
	cases := []testCase{
		{Name: "not yaml", Body: "bounds: [1"},
		{Name: "inverted bounds", Body: "bounds: {min: [5, 5], max: [0, 0]}\nenemies: [{id: a, policy: hunter, weight: 1}]"},
		{Name: "flat obstacle", Body: "bounds: {min: [0, 0], max: [5, 5]}\nobstacles: [{center: [1, 1, 1], half: [1, 0, 1]}]\nenemies: [{id: a, policy: hunter, weight: 1}]"},
		{Name: "no enemies", Body: "bounds: {min: [0, 0], max: [5, 5]}"},
		{Name: "unknown policy", Body: "bounds: {min: [0, 0], max: [5, 5]}\nenemies: [{id: a, policy: flyer, weight: 1}]"},
		{Name: "duplicate id", Body: "bounds: {min: [0, 0], max: [5, 5]}\nenemies: [{id: a, policy: hunter, weight: 1}, {id: a, policy: drifter, weight: 1}]"},
		{Name: "zero weights", Body: "bounds: {min: [0, 0], max: [5, 5]}\nenemies: [{id: a, policy: hunter, weight: 0}]"},
	}
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := ParseLayout([]byte(tc.Body))
			assert.Error(t, err)
		})
	}
}

func TestLoadLayoutFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	body := "name: box\nbounds: {min: [-5, -5], max: [5, 5]}\nenemies: [{id: a, policy: drifter, wander_speed: 1, weight: 1}]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	l, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "box", l.Name)
	assert.Equal(t, PolicyDrifter, l.Enemies[0].Policy)

	_, err = LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
