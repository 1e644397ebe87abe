package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/detective-quest/pkg/scenario"
)

func TestValidate_FixedCase(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, validate(&out, scenario.BuildFixedMap(), scenario.Associations()))
	assert.Contains(t, out.String(), "Rooms: 7, clues: 5, associations: 5, suspects: 3")
	assert.Contains(t, out.String(), "Case file is valid!")
}

func TestValidate_MissingAssociations(t *testing.T) {
	var out bytes.Buffer
	err := validate(&out, scenario.BuildFixedMap(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `clue "Wet footprint near the sofa" in Living Room has no associated suspect`)
	assert.NotContains(t, out.String(), "valid!")
}
