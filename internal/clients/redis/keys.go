package redis

import (
	"fmt"

	"github.com/google/uuid"
)

// Key builders shared by the subject and feedback services so invalidation
// and population always agree on the key shape.

func SubjectsByBranchKey(branch, cycle string) string {
	if cycle == "" {
		cycle = "all"
	}
	return fmt.Sprintf("subjects:%s:%s", branch, cycle)
}

func SubjectsByBranchPattern(branch string) string {
	return fmt.Sprintf("subjects:%s:*", branch)
}

func SubjectDetailKey(subjectID uuid.UUID) string {
	return fmt.Sprintf("subject:%s", subjectID)
}

func FeedbackStatsKey() string {
	return "feedback:stats"
}
