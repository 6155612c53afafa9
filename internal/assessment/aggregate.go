package assessment

import (
	"math"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// AnsweredItem is one questionnaire item together with the respondent's raw
// Likert answer (1-5; 0 means unanswered).
type AnsweredItem struct {
	Category Category
	Inverted bool
	Value    int
}

// Result is the aggregated output of a completed assessment.
type Result struct {
	BigFive        types.BigFiveProfile `json:"big_five"`
	SincerityScore int                  `json:"sincerity_score"`
}

// AggregateAnswers aggregates a raw answer vector against the standard
// questionnaire. The answer order must match Questions().
func AggregateAnswers(answers []int) (*Result, error) {
	if len(answers) != QuestionCount {
		return nil, &IncompleteAssessmentError{Answered: len(answers), Expected: QuestionCount}
	}

	questions := Questions()
	items := make([]AnsweredItem, QuestionCount)
	for i, q := range questions {
		items[i] = AnsweredItem{Category: q.Category, Inverted: q.Inverted, Value: answers[i]}
	}
	return AggregateProfile(items)
}

// AggregateProfile converts a complete set of answered items into a BigFive
// profile and a sincerity score. Deterministic: the same answers always
// produce the same result.
//
// Inverted items are reflected around the scale center (1↔5, 2↔4) before
// grouping. Each category's raw sum (range [n, 5n] for n items) is mapped
// linearly onto [0,100]. Control items measure agreement with trap
// statements, so sincerity is the complement of their normalized score.
func AggregateProfile(items []AnsweredItem) (*Result, error) {
	if len(items) != QuestionCount {
		return nil, &IncompleteAssessmentError{Answered: len(items), Expected: QuestionCount}
	}

	answered := 0
	for i, item := range items {
		if item.Value == 0 {
			continue
		}
		if item.Value < 1 || item.Value > 5 {
			return nil, &InvalidAnswerRangeError{Index: i, Value: item.Value}
		}
		answered++
	}
	if answered != len(items) {
		return nil, &IncompleteAssessmentError{Answered: answered, Expected: len(items)}
	}

	grouped := make(map[Category][]int, 6)
	for _, item := range items {
		value := item.Value
		if item.Inverted {
			value = 6 - value
		}
		grouped[item.Category] = append(grouped[item.Category], value)
	}

	scores := make(map[Category]int, 6)
	for _, category := range []Category{
		CategoryOpenness,
		CategoryConscientiousness,
		CategoryExtraversion,
		CategoryAgreeableness,
		CategoryStability,
		CategoryControl,
	} {
		score, err := normalize(grouped[category])
		if err != nil {
			return nil, err
		}
		scores[category] = score
	}

	return &Result{
		BigFive: types.BigFiveProfile{
			Openness:          scores[CategoryOpenness],
			Conscientiousness: scores[CategoryConscientiousness],
			Extraversion:      scores[CategoryExtraversion],
			Agreeableness:     scores[CategoryAgreeableness],
			Stability:         scores[CategoryStability],
		},
		SincerityScore: 100 - scores[CategoryControl],
	}, nil
}

// normalize maps a category's transformed scores from their raw sum range
// [n, 5n] onto [0,100]. An empty category defaults to the scale midpoint.
func normalize(values []int) (int, error) {
	n := len(values)
	if n == 0 {
		return 50, nil
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	minPossible := n
	maxPossible := 5 * n
	if sum < minPossible || sum > maxPossible {
		// Unreachable when per-item validation ran; kept as a fail-fast
		// guard against upstream changes feeding unvalidated data.
		return 0, &InvalidAnswerRangeError{Index: -1, Value: sum}
	}

	return int(math.Round(float64(sum-minPossible) / float64(maxPossible-minPossible) * 100)), nil
}
