package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperature_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Temperature
	}{
		{"number", `42.5`, 42.5},
		{"integer", `70`, 70},
		{"numeric string", `"36.5"`, 36.5},
		{"null coerced to zero", `null`, 0},
		{"text coerced to zero", `"warm"`, 0},
		{"object coerced to zero", `{"v":1}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var temp Temperature
			require.NoError(t, json.Unmarshal([]byte(tt.in), &temp))
			assert.Equal(t, tt.want, temp)
		})
	}
}

func TestPersona_UnmarshalCoercesBadTemp(t *testing.T) {
	var p Persona
	err := json.Unmarshal([]byte(`{"id":"p1","name":"엄마","category_id":"c1","relationship_temp":"n/a"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, Temperature(0), p.RelationshipTemp)
	assert.Equal(t, "c1", p.CategoryID)
}
