package domain

// Known checklist question types. The parser passes other values through unchanged.
const (
	QuestionTypeRating      = "rating"
	QuestionTypeTextInput   = "text_input"
	QuestionTypeCheckbox    = "checkbox"
	QuestionTypePhotoUpload = "photo_upload"
)

// ChecklistDefinition is the normalized checklist of a business category.
type ChecklistDefinition struct {
	CategoryName string              `json:"category_name"`
	Questions    []ChecklistQuestion `json:"checklist"`
}

// ChecklistQuestion is one audit question. Min and Max are nil unless the
// source text supplied them, and are then omitted from the JSON form.
type ChecklistQuestion struct {
	Question string `json:"question"`
	Type     string `json:"type"`
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
}

// IsKnownType reports whether the question type is one the audit UI can render.
func (q ChecklistQuestion) IsKnownType() bool {
	switch q.Type {
	case QuestionTypeRating, QuestionTypeTextInput, QuestionTypeCheckbox, QuestionTypePhotoUpload:
		return true
	}
	return false
}
