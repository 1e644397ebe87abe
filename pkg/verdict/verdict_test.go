package verdict

import (
	"testing"

	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	roster := []suspects.Tally{
		{Name: "Marcos", Count: 2},
		{Name: "Mariana", Count: 1},
		{Name: "Ricardo", Count: 0},
		{Name: "Élodie", Count: 3},
	}

	tests := []struct {
		name      string
		accused   string
		supported bool
		known     bool
		suspect   string
	}{
		{name: "exact match at threshold", accused: "Marcos", supported: true, known: true, suspect: "Marcos"},
		{name: "lowercase match", accused: "marcos", supported: true, known: true, suspect: "Marcos"},
		{name: "uppercase match", accused: "MARCOS", supported: true, known: true, suspect: "Marcos"},
		{name: "one below threshold", accused: "Mariana", supported: false, known: true, suspect: "Mariana"},
		{name: "one below threshold any case", accused: "mARIANA", supported: false, known: true, suspect: "Mariana"},
		{name: "zero tally", accused: "ricardo", supported: false, known: true, suspect: "Ricardo"},
		{name: "non-ascii case fold", accused: "ÉLODIE", supported: true, known: true, suspect: "Élodie"},
		{name: "surrounding whitespace", accused: "  marcos ", supported: true, known: true, suspect: "Marcos"},
		{name: "leading space is trimmed", accused: " marcos", supported: true, known: true, suspect: "Marcos"},
		{name: "tabs are trimmed", accused: "\tMariana\t", supported: false, known: true, suspect: "Mariana"},
		{name: "whitespace only", accused: "   ", supported: false, known: false},
		{name: "unknown name", accused: "Helena", supported: false, known: false},
		{name: "prefix is not a match", accused: "Marc", supported: false, known: false},
		{name: "empty name", accused: "", supported: false, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Decide(roster, tt.accused)
			assert.Equal(t, tt.supported, res.Supported)
			assert.Equal(t, tt.known, res.Known)
			assert.Equal(t, tt.suspect, res.Suspect)
			assert.Equal(t, tt.accused, res.Accused)
			assert.Equal(t, tt.supported, Supported(roster, tt.accused))
		})
	}
}

func TestDecide_IsIdempotent(t *testing.T) {
	roster := []suspects.Tally{{Name: "Marcos", Count: 1}}
	first := Decide(roster, "marcos")
	second := Decide(roster, "marcos")
	assert.Equal(t, first, second)
	assert.Equal(t, []suspects.Tally{{Name: "Marcos", Count: 1}}, roster)
}

func TestDecide_EmptyRoster(t *testing.T) {
	assert.False(t, Supported(nil, "Marcos"))
}
