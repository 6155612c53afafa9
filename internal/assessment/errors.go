package assessment

import "fmt"

// IncompleteAssessmentError indicates the questionnaire was not fully
// answered. Recoverable by the caller: re-prompt the respondent.
type IncompleteAssessmentError struct {
	Answered int
	Expected int
}

func (e *IncompleteAssessmentError) Error() string {
	return fmt.Sprintf("incomplete assessment: %d of %d items answered", e.Answered, e.Expected)
}

// InvalidAnswerRangeError indicates an answer outside the 1-5 Likert scale
// reached the aggregator. This is an upstream validation bug, never
// silently clamped.
type InvalidAnswerRangeError struct {
	Index int
	Value int
}

func (e *InvalidAnswerRangeError) Error() string {
	return fmt.Sprintf("invalid answer at item %d: %d is outside the 1-5 Likert scale", e.Index, e.Value)
}
