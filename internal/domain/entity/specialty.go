package entity

// Specialty is a catalog entry naming a medical specialty
type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}

// FieldType enumerates the input kinds a consultation form field may take
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
)

// TemplateField is one entry in a consultation form
type TemplateField struct {
	ID       string    `json:"id"`
	Label    string    `json:"label" validate:"required"`
	Type     FieldType `json:"type" validate:"required,oneof=text textarea number date"`
	Required bool      `json:"required,omitempty"`
}

// SpecialtyTemplate defines the consultation form shape for a specialty.
// Visit entries keep their template id even after the template is deleted:
// history is immutable, so a dangling reference here is accepted.
type SpecialtyTemplate struct {
	ID          string          `json:"id"`
	SpecialtyID string          `json:"specialtyId" validate:"required"`
	Fields      []TemplateField `json:"fields" validate:"dive"`
}

// FieldByID returns the field with the given id, if present
func (t *SpecialtyTemplate) FieldByID(id string) (TemplateField, bool) {
	for _, f := range t.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return TemplateField{}, false
}
