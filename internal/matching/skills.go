package matching

import "strings"

// skillOverlap computes the technical match between a candidate's skills and
// a job's required skills. Matching is case-insensitive exact string
// comparison; common and missing skills keep the job posting's casing.
// A job with no required skills grants full credit: there is nothing to be
// missing, and dividing by zero would reject an otherwise valid pairing.
func skillOverlap(candidateSkills, requiredSkills []string) (score float64, common, missing []string) {
	common = make([]string, 0, len(requiredSkills))
	missing = make([]string, 0, len(requiredSkills))

	if len(requiredSkills) == 0 {
		return 100, common, missing
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	for _, required := range requiredSkills {
		if have[strings.ToLower(strings.TrimSpace(required))] {
			common = append(common, required)
		} else {
			missing = append(missing, required)
		}
	}

	score = float64(len(common)) / float64(len(requiredSkills)) * 100
	return score, common, missing
}
