package assessment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerAll returns a complete answer vector with every item set to value.
func answerAll(value int) []int {
	answers := make([]int, QuestionCount)
	for i := range answers {
		answers[i] = value
	}
	return answers
}

// indicesOf returns the answer indices of all items in the given category.
func indicesOf(t *testing.T, category Category) []int {
	t.Helper()
	var indices []int
	for i, q := range Questions() {
		if q.Category == category {
			indices = append(indices, i)
		}
	}
	require.NotEmpty(t, indices)
	return indices
}

func TestQuestions_BankShape(t *testing.T) {
	questions := Questions()
	require.Len(t, questions, QuestionCount)

	counts := make(map[Category]int)
	for _, q := range questions {
		counts[q.Category]++
		assert.NotEmpty(t, q.Text)
	}

	// Five items per category, control included.
	for _, category := range []Category{
		CategoryOpenness, CategoryConscientiousness, CategoryExtraversion,
		CategoryAgreeableness, CategoryStability, CategoryControl,
	} {
		assert.Equal(t, 5, counts[category], "category %s", category)
	}
}

func TestAggregateAnswers_MidpointEverywhere(t *testing.T) {
	result, err := AggregateAnswers(answerAll(3))
	require.NoError(t, err)

	assert.Equal(t, 50, result.BigFive.Openness)
	assert.Equal(t, 50, result.BigFive.Conscientiousness)
	assert.Equal(t, 50, result.BigFive.Extraversion)
	assert.Equal(t, 50, result.BigFive.Agreeableness)
	assert.Equal(t, 50, result.BigFive.Stability)
	assert.Equal(t, 50, result.SincerityScore)
}

func TestAggregateAnswers_InvertedItemReflection(t *testing.T) {
	questions := Questions()

	// Stability has two inverted items in the bank. Raw 5 on an inverted
	// item must contribute 1 to the category sum.
	answers := answerAll(3)
	var invertedIdx int
	for _, idx := range indicesOf(t, CategoryStability) {
		if questions[idx].Inverted {
			invertedIdx = idx
			break
		}
	}

	answers[invertedIdx] = 5
	result, err := AggregateAnswers(answers)
	require.NoError(t, err)
	// Sums per 5-item category map [5,25] onto [0,100]: 3,3,3,3 plus
	// transformed 1 gives 13 -> 40.
	assert.Equal(t, 40, result.BigFive.Stability)

	// Raw 1 on the same inverted item contributes 5.
	answers[invertedIdx] = 1
	result, err = AggregateAnswers(answers)
	require.NoError(t, err)
	assert.Equal(t, 60, result.BigFive.Stability)
}

func TestAggregateAnswers_SincerityFromControlItems(t *testing.T) {
	// Maximal agreement with every trap statement reads as exaggeration.
	answers := answerAll(3)
	for _, idx := range indicesOf(t, CategoryControl) {
		answers[idx] = 5
	}
	result, err := AggregateAnswers(answers)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SincerityScore)

	// Full disagreement with the traps reads as maximal sincerity.
	for _, idx := range indicesOf(t, CategoryControl) {
		answers[idx] = 1
	}
	result, err = AggregateAnswers(answers)
	require.NoError(t, err)
	assert.Equal(t, 100, result.SincerityScore)
}

func TestAggregateAnswers_Deterministic(t *testing.T) {
	answers := answerAll(4)
	answers[2] = 1
	answers[9] = 5

	first, err := AggregateAnswers(answers)
	require.NoError(t, err)
	second, err := AggregateAnswers(answers)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregateAnswers_Incomplete(t *testing.T) {
	answers := answerAll(3)
	answers[12] = 0

	_, err := AggregateAnswers(answers)
	require.Error(t, err)

	var incomplete *IncompleteAssessmentError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, QuestionCount-1, incomplete.Answered)
	assert.Equal(t, QuestionCount, incomplete.Expected)
}

func TestAggregateAnswers_WrongLength(t *testing.T) {
	_, err := AggregateAnswers(answerAll(3)[:29])
	var incomplete *IncompleteAssessmentError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 29, incomplete.Answered)
}

func TestAggregateAnswers_OutOfRange(t *testing.T) {
	answers := answerAll(3)
	answers[7] = 6

	_, err := AggregateAnswers(answers)
	var invalid *InvalidAnswerRangeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 7, invalid.Index)
	assert.Equal(t, 6, invalid.Value)

	answers[7] = -1
	_, err = AggregateAnswers(answers)
	assert.True(t, errors.As(err, &invalid))
}

func TestAggregateProfile_EmptyCategoryDefaultsToMidpoint(t *testing.T) {
	// A hand-built item set concentrated on one category leaves the others
	// (and control) at the 50 default.
	items := make([]AnsweredItem, QuestionCount)
	for i := range items {
		items[i] = AnsweredItem{Category: CategoryOpenness, Value: 5}
	}

	result, err := AggregateProfile(items)
	require.NoError(t, err)
	assert.Equal(t, 100, result.BigFive.Openness)
	assert.Equal(t, 50, result.BigFive.Conscientiousness)
	assert.Equal(t, 50, result.BigFive.Stability)
	assert.Equal(t, 50, result.SincerityScore)
}
