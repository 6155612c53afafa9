package assessment

import "github.com/leandroarrudaa/db-deumatch/internal/types"

// Candidate archetypes derived from the BigFive profile.
const (
	ArchetypeEliteHunter      = "HUNTER DE ELITE"
	ArchetypeRelentlessCloser = "CLOSER IMPLACÁVEL"
	ArchetypeDiplomat         = "DIPLOMATA ESTRATÉGICO"
	ArchetypeArchitect        = "ARQUITETO DE SOLUÇÕES"
	ArchetypeGeneralist       = "GENERALISTA TÁTICO"
)

// ClassifyArchetype assigns a sales archetype label from trait thresholds.
// Rules are checked in priority order; the generalist label is the fallback.
func ClassifyArchetype(p types.BigFiveProfile) string {
	switch {
	case p.Conscientiousness > 85 && p.Extraversion > 70:
		return ArchetypeEliteHunter
	case p.Stability > 85 && p.Conscientiousness > 75:
		return ArchetypeRelentlessCloser
	case p.Agreeableness > 85 && p.Extraversion > 60:
		return ArchetypeDiplomat
	case p.Openness > 85:
		return ArchetypeArchitect
	}
	return ArchetypeGeneralist
}
