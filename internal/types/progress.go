package types

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ModuleProgressEntry is a denormalized per-module counter pair inside a
// SubjectProgressEntry. Entries are created on first recompute and updated in
// place afterwards; stale entries are never removed.
type ModuleProgressEntry struct {
	ModuleID           uuid.UUID `json:"moduleId"`
	ModuleNumber       int       `json:"moduleNumber"`
	TotalQuestions     int       `json:"totalQuestions"`
	CompletedQuestions int       `json:"completedQuestions"`
}

// SubjectProgressEntry summarizes one subject inside a Progress record.
// SubjectID is a weak reference: it is used for lookup only and stays valid
// even if the subject row disappears. SubjectName is a snapshot and may drift
// if the subject is renamed.
type SubjectProgressEntry struct {
	SubjectID          uuid.UUID             `json:"subjectId"`
	SubjectName        string                `json:"subjectName"`
	TotalQuestions     int                   `json:"totalQuestions"`
	CompletedQuestions int                   `json:"completedQuestions"`
	Modules            []ModuleProgressEntry `json:"modules"`
}

// Progress is the per-user per-branch rollup of completion counts, a cached
// projection of the completed flags living on Subject rows.
type Progress struct {
	ID              uuid.UUID                                 `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                                 `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_branch" json:"user_id"`
	Branch          string                                    `gorm:"column:branch;not null;uniqueIndex:idx_progress_user_branch" json:"branch"`
	SubjectProgress datatypes.JSONSlice[SubjectProgressEntry] `gorm:"column:subject_progress" json:"subject_progress"`
	TotalProgress   int                                       `gorm:"column:total_progress;not null;default:0" json:"total_progress"`
	LastUpdated     time.Time                                 `gorm:"column:last_updated" json:"last_updated"`
	CreatedAt       time.Time                                 `json:"created_at"`
	UpdatedAt       time.Time                                 `json:"updated_at"`
	DeletedAt       gorm.DeletedAt                            `gorm:"index" json:"deleted_at,omitempty"`
}

func (Progress) TableName() string { return "progress" }

// CalculateTotal recomputes TotalProgress from the counters of every subject
// entry and stamps LastUpdated. Returns the new percentage. Zero totals yield
// zero, never a division error.
func (p *Progress) CalculateTotal() int {
	totalQuestions := 0
	completedQuestions := 0
	for i := range p.SubjectProgress {
		totalQuestions += p.SubjectProgress[i].TotalQuestions
		completedQuestions += p.SubjectProgress[i].CompletedQuestions
	}
	if totalQuestions == 0 {
		p.TotalProgress = 0
	} else {
		p.TotalProgress = int(math.Round(float64(completedQuestions) / float64(totalQuestions) * 100))
	}
	p.LastUpdated = time.Now()
	return p.TotalProgress
}

// FindSubjectEntry returns the entry for subjectID, or nil.
func (p *Progress) FindSubjectEntry(subjectID uuid.UUID) *SubjectProgressEntry {
	for i := range p.SubjectProgress {
		if p.SubjectProgress[i].SubjectID == subjectID {
			return &p.SubjectProgress[i]
		}
	}
	return nil
}
