package checklist

import (
	"encoding/json"
	"errors"
	"testing"

	"auditpro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restaurantChecklist = `category_name: Restaurant
checklist:
  - question: "Cleanliness rating (1-10)?"
    type: rating
    min: 1
    max: 10
  - question: "Quality of ingredients used?"
    type: text_input
  - question: "Are health and safety certificates visible?"
    type: checkbox
  - question: "Upload photo of kitchen cleanliness."
    type: photo_upload
`

func intPtr(n int) *int { return &n }

func TestParse_RestaurantSample(t *testing.T) {
	def, err := Parse(restaurantChecklist)
	require.NoError(t, err)

	assert.Equal(t, "Restaurant", def.CategoryName)
	require.Len(t, def.Questions, 4)
	assert.Equal(t, "rating", def.Questions[0].Type)
	assert.Equal(t, intPtr(1), def.Questions[0].Min)
	assert.Equal(t, intPtr(10), def.Questions[0].Max)

	wantOrder := []string{
		"Cleanliness rating (1-10)?",
		"Quality of ingredients used?",
		"Are health and safety certificates visible?",
		"Upload photo of kitchen cleanliness.",
	}
	for i, q := range def.Questions {
		assert.Equal(t, wantOrder[i], q.Question)
		if i > 0 {
			assert.Nil(t, q.Min)
			assert.Nil(t, q.Max)
		}
	}
}

func TestParse_SerializedFormOmitsUnsetBounds(t *testing.T) {
	def, err := Parse(restaurantChecklist)
	require.NoError(t, err)

	data, err := json.Marshal(def)
	require.NoError(t, err)

	var doc struct {
		CategoryName string                   `json:"category_name"`
		Checklist    []map[string]interface{} `json:"checklist"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Checklist, 4)

	assert.Equal(t, float64(1), doc.Checklist[0]["min"])
	assert.Equal(t, float64(10), doc.Checklist[0]["max"])
	for _, q := range doc.Checklist[1:] {
		assert.NotContains(t, q, "min")
		assert.NotContains(t, q, "max")
		assert.Contains(t, q, "question")
		assert.Contains(t, q, "type")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *domain.ChecklistDefinition
	}{
		{
			name:  "empty input",
			input: "",
			want:  &domain.ChecklistDefinition{Questions: []domain.ChecklistQuestion{}},
		},
		{
			name:  "only blank and comment lines",
			input: "\n   \n# a comment\n  # indented comment\n",
			want:  &domain.ChecklistDefinition{Questions: []domain.ChecklistQuestion{}},
		},
		{
			name:  "quoted category name",
			input: `category_name: "Restaurant"`,
			want:  &domain.ChecklistDefinition{CategoryName: "Restaurant", Questions: []domain.ChecklistQuestion{}},
		},
		{
			name:  "quotes stripped everywhere in the value",
			input: "category_name: Joe's \"Best\" Diner\n- question: Is the 'menu' \"visible\"?\n  type: checkbox",
			want: &domain.ChecklistDefinition{
				CategoryName: "Joes Best Diner",
				Questions:    []domain.ChecklistQuestion{{Question: "Is the menu visible?", Type: "checkbox"}},
			},
		},
		{
			name:  "attributes before first question are ignored",
			input: "type: rating\nmin: 1\nmax: oops\n- question: First\n  type: text_input",
			want: &domain.ChecklistDefinition{
				Questions: []domain.ChecklistQuestion{{Question: "First", Type: "text_input"}},
			},
		},
		{
			name:  "trailing question without attributes is flushed",
			input: "checklist:\n- question: Only one",
			want: &domain.ChecklistDefinition{
				Questions: []domain.ChecklistQuestion{{Question: "Only one"}},
			},
		},
		{
			name:  "unknown type and bounds on non-rating are passed through",
			input: "- question: Temperature\n  type: thermometer\n  min: -5\n  max: 8",
			want: &domain.ChecklistDefinition{
				Questions: []domain.ChecklistQuestion{{Question: "Temperature", Type: "thermometer", Min: intPtr(-5), Max: intPtr(8)}},
			},
		},
		{
			name:  "unrecognized lines are ignored",
			input: "version: 2\n- question: A\n  hint: look closely\n  type: rating\n  weight: 3",
			want: &domain.ChecklistDefinition{
				Questions: []domain.ChecklistQuestion{{Question: "A", Type: "rating"}},
			},
		},
		{
			name:  "question markers without checklist header",
			input: "- question: A\n-question: B",
			want: &domain.ChecklistDefinition{
				Questions: []domain.ChecklistQuestion{{Question: "A"}, {Question: "B"}},
			},
		},
		{
			name:  "windows line endings",
			input: "category_name: Gym\r\nchecklist:\r\n  - question: Clean?\r\n    type: checkbox\r\n",
			want: &domain.ChecklistDefinition{
				CategoryName: "Gym",
				Questions:    []domain.ChecklistQuestion{{Question: "Clean?", Type: "checkbox"}},
			},
		},
		{
			name:  "quoted integers",
			input: "- question: Score\n  type: rating\n  min: \"0\"\n  max: '5'",
			want: &domain.ChecklistDefinition{
				Questions: []domain.ChecklistQuestion{{Question: "Score", Type: "rating", Min: intPtr(0), Max: intPtr(5)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_MalformedIntegers(t *testing.T) {
	inputs := []string{
		"- question: Q\n  type: rating\n  min: one",
		"- question: Q\n  type: rating\n  max: 10.5",
		"- question: Q\n  type: rating\n  max:",
		"- question: Q\n  min: 99999999999999999999999",
	}
	for _, input := range inputs {
		def, err := Parse(input)
		assert.Nil(t, def)
		assert.True(t, errors.Is(err, ErrInvalidFormat), "input %q", input)
	}
}

func TestParse_Deterministic(t *testing.T) {
	first, err := Parse(restaurantChecklist)
	require.NoError(t, err)
	second, err := Parse(restaurantChecklist)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParse_JSONForm(t *testing.T) {
	fromText, err := Parse(restaurantChecklist)
	require.NoError(t, err)

	data, err := json.Marshal(fromText)
	require.NoError(t, err)

	fromJSON, err := Parse("  " + string(data) + "\n")
	require.NoError(t, err)
	assert.Equal(t, fromText, fromJSON)

	tests := []struct {
		name    string
		input   string
		want    *domain.ChecklistDefinition
		wantErr bool
	}{
		{
			name:  "quotes stripped like the line format",
			input: `{"category_name":"Joe's \"Diner\"","checklist":[{"question":"Is the \"menu\" visible?","type":"'checkbox'"}]}`,
			want: &domain.ChecklistDefinition{
				CategoryName: "Joes Diner",
				Questions:    []domain.ChecklistQuestion{{Question: "Is the menu visible?", Type: "checkbox"}},
			},
		},
		{
			name:    "newline in question",
			input:   `{"category_name":"X","checklist":[{"question":"first line\nsecond line","type":"text_input"}]}`,
			wantErr: true,
		},
		{
			name:    "tab in category name",
			input:   `{"category_name":"X\tY","checklist":[{"question":"Q","type":"checkbox"}]}`,
			wantErr: true,
		},
		{
			name:    "control character in type",
			input:   `{"category_name":"X","checklist":[{"question":"Q","type":"check\u0000box"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				assert.Nil(t, def)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, def)
		})
	}

	lineForm, err := Parse("category_name: Joe's \"Diner\"\n- question: Is the \"menu\" visible?\n  type: 'checkbox'")
	require.NoError(t, err)
	fromJSON, err = Parse(tests[0].input)
	require.NoError(t, err)
	assert.Equal(t, lineForm, fromJSON)
}

func TestParse_JSONFormErrors(t *testing.T) {
	inputs := []string{
		`{"category_name": "X", "checklist": [`,
		`{"category_name": "X", "checklist": [{"question": "Q", "min": "low"}]}`,
		`{"category_name": "X"} trailing`,
	}
	for _, input := range inputs {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", input)
	}

	def, err := Parse(`{"category_name": "X"}`)
	require.NoError(t, err)
	assert.NotNil(t, def.Questions)
	assert.Empty(t, def.Questions)
}

func TestFormat_RoundTrip(t *testing.T) {
	def, err := Parse(restaurantChecklist)
	require.NoError(t, err)

	again, err := Parse(Format(def))
	require.NoError(t, err)
	assert.Equal(t, def, again)

	t.Run("values stay on one line", func(t *testing.T) {
		def := &domain.ChecklistDefinition{
			CategoryName: "Joe's \"Diner\"",
			Questions: []domain.ChecklistQuestion{
				{Question: "Is the menu visible?\nsecond line", Type: "'checkbox'"},
			},
		}
		again, err := Parse(Format(def))
		require.NoError(t, err)
		assert.Equal(t, "Joes Diner", again.CategoryName)
		require.Len(t, again.Questions, 1)
		assert.Equal(t, "Is the menu visible? second line", again.Questions[0].Question)
		assert.Equal(t, "checkbox", again.Questions[0].Type)
	})
}
