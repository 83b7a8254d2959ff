package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is the leaf practice item. It lives embedded inside a Module and
// has no lifecycle of its own; the only field ever mutated after seeding is
// Completed.
type Question struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
}

// Module is a numbered subdivision (1-5) of a Subject. Embedded value object;
// question order is display order only.
type Module struct {
	ID           uuid.UUID  `json:"id"`
	ModuleNumber int        `json:"moduleNumber"`
	Title        string     `json:"title"`
	Questions    []Question `json:"questions"`
}

// Subject is the aggregate root of the curriculum tree. Modules and their
// questions are stored as a single JSON document column and the whole row is
// saved after any nested mutation, so the Subject row is the unit of
// consistency for its own writes.
type Subject struct {
	ID        uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string                         `gorm:"column:name;not null" json:"name"`
	Code      string                         `gorm:"column:code;not null;uniqueIndex:idx_subject_code_branch_cycle" json:"code"`
	Credits   int                            `gorm:"column:credits;not null" json:"credits"`
	Cycle     string                         `gorm:"column:cycle;not null;uniqueIndex:idx_subject_code_branch_cycle" json:"cycle"`
	Branch    string                         `gorm:"column:branch;not null;uniqueIndex:idx_subject_code_branch_cycle;index" json:"branch"`
	Modules   datatypes.JSONSlice[Module]    `gorm:"column:modules" json:"modules"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
	DeletedAt gorm.DeletedAt                 `gorm:"index" json:"deleted_at,omitempty"`
}

func (Subject) TableName() string { return "subject" }

// FindModule returns the first module with the given number, matching the
// lookup the toggle endpoint performs. Module numbers are expected unique
// within a subject but that is not enforced here.
func (s *Subject) FindModule(moduleNumber int) *Module {
	for i := range s.Modules {
		if s.Modules[i].ModuleNumber == moduleNumber {
			return &s.Modules[i]
		}
	}
	return nil
}

// FindQuestion returns the question with the given id inside m.
func (m *Module) FindQuestion(questionID uuid.UUID) *Question {
	for i := range m.Questions {
		if m.Questions[i].ID == questionID {
			return &m.Questions[i]
		}
	}
	return nil
}
