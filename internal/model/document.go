package model

import (
	"encoding/json"
	"fmt"

	"portfolio-cms/internal/domain"

	"github.com/google/uuid"
)

// Document is the profile import file: a complete resume profile plus the
// role variant to render it with. It is validated against
// schema/profile.schema.json before decoding.
type Document struct {
	Variant string `json:"variant,omitempty"`
	domain.ResumeProfile
}

// Decode validates raw against the profile schema and decodes it. Record IDs
// are cleared so the stores assign fresh ones, and experience entries are
// normalized.
func Decode(raw []byte) (*Document, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode profile document: %w", err)
	}
	doc.reset()
	return &doc, nil
}

func (d *Document) reset() {
	d.Personal.ID = uuid.Nil
	for i := range d.Experience {
		d.Experience[i].ID = uuid.Nil
		d.Experience[i].Normalize()
	}
	for i := range d.Education {
		d.Education[i].ID = uuid.Nil
	}
	for i := range d.Skills {
		d.Skills[i].ID = uuid.Nil
	}
	for i := range d.Projects {
		d.Projects[i].ID = uuid.Nil
	}
	for i := range d.Certifications {
		d.Certifications[i].ID = uuid.Nil
	}
}
