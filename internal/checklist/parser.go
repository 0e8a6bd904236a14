// Package checklist converts human-authored audit checklists into the
// normalized form stored with a business category.
//
// The accepted text is a small line-oriented subset of YAML:
//
//	category_name: Restaurant
//	checklist:
//	  - question: "Cleanliness rating (1-10)?"
//	    type: rating
//	    min: 1
//	    max: 10
//
// Text starting with '{' is read as the JSON form of the same structure.
package checklist

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"auditpro/internal/domain"
)

// ErrInvalidFormat is the only error Parse returns; the underlying cause
// is not preserved.
var ErrInvalidFormat = errors.New("invalid checklist format")

const (
	keyCategoryName  = "category_name:"
	sectionChecklist = "checklist:"
	keyQuestion      = "question:"
	keyType          = "type:"
	keyMin           = "min:"
	keyMax           = "max:"
)

// Parse builds a ChecklistDefinition from text. Unrecognized lines are
// ignored, as are type/min/max lines that appear before the first question.
func Parse(text string) (*domain.ChecklistDefinition, error) {
	if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, "{") {
		return parseJSON(trimmed)
	}

	def := &domain.ChecklistDefinition{Questions: []domain.ChecklistQuestion{}}
	var open *domain.ChecklistQuestion

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, keyCategoryName):
			def.CategoryName = stringValue(line, keyCategoryName)

		case line == sectionChecklist:
			// Section header only; question markers are honoured with or without it.

		case isQuestionMarker(line):
			if open != nil {
				def.Questions = append(def.Questions, *open)
			}
			body := strings.TrimSpace(strings.TrimPrefix(line, "-"))
			open = &domain.ChecklistQuestion{Question: stringValue(body, keyQuestion)}

		case strings.HasPrefix(line, keyType):
			if open != nil {
				open.Type = stringValue(line, keyType)
			}

		case strings.HasPrefix(line, keyMin):
			if open != nil {
				n, err := intValue(line, keyMin)
				if err != nil {
					return nil, ErrInvalidFormat
				}
				open.Min = &n
			}

		case strings.HasPrefix(line, keyMax):
			if open != nil {
				n, err := intValue(line, keyMax)
				if err != nil {
					return nil, ErrInvalidFormat
				}
				open.Max = &n
			}
		}
	}

	if open != nil {
		def.Questions = append(def.Questions, *open)
	}
	return def, nil
}

func isQuestionMarker(line string) bool {
	if !strings.HasPrefix(line, "-") {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(line[1:]), keyQuestion)
}

// stringValue returns the text after key with every quote character removed.
func stringValue(line, key string) string {
	v := strings.TrimSpace(strings.TrimPrefix(line, key))
	return stripQuotes(v)
}

func intValue(line, key string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(stringValue(line, key)))
}

func stripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", `'`, "").Replace(s)
}

func parseJSON(text string) (*domain.ChecklistDefinition, error) {
	var def domain.ChecklistDefinition
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(&def); err != nil {
		return nil, ErrInvalidFormat
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrInvalidFormat
	}
	if def.Questions == nil {
		def.Questions = []domain.ChecklistQuestion{}
	}

	// Values must survive a trip through the line format.
	fields := []*string{&def.CategoryName}
	for i := range def.Questions {
		fields = append(fields, &def.Questions[i].Question, &def.Questions[i].Type)
	}
	for _, f := range fields {
		if strings.ContainsFunc(*f, unicode.IsControl) {
			return nil, ErrInvalidFormat
		}
		*f = stripQuotes(*f)
	}
	return &def, nil
}

// quoted renders s as a double-quoted value on a single line.
func quoted(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, stripQuotes(s))
	return `"` + s + `"`
}

// Format renders def in the line format accepted by Parse.
func Format(def *domain.ChecklistDefinition) string {
	var b strings.Builder
	b.WriteString(keyCategoryName + " " + quoted(def.CategoryName) + "\n")
	b.WriteString(sectionChecklist + "\n")
	for _, q := range def.Questions {
		b.WriteString("  - " + keyQuestion + " " + quoted(q.Question) + "\n")
		b.WriteString("    " + keyType + " " + quoted(q.Type) + "\n")
		if q.Min != nil {
			b.WriteString("    " + keyMin + " " + strconv.Itoa(*q.Min) + "\n")
		}
		if q.Max != nil {
			b.WriteString("    " + keyMax + " " + strconv.Itoa(*q.Max) + "\n")
		}
	}
	return b.String()
}
