package matching

import (
	"fmt"
	"strings"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// Thresholds for the explanation rules. Each cons rule fires independently;
// the output order is the fixed evaluation order below, not severity.
const (
	prosStrongTechnical  = 80.0
	prosDecentTechnical  = 50.0
	prosStrongBehavioral = 85.0
	prosDecentBehavioral = 70.0
	prosStrongChallenge  = 80.0

	gapLowConscientiousness = 70
	gapLowExtraversion      = 60
	gapHighAgreeableness    = 80
	gapLowStability         = 60
	gapLowTechnical         = 50.0
	gapFallbackCeiling      = 95.0

	maxProsSkills = 2
	maxGapSkills  = 3
)

// buildPros assembles the strengths narrative from the component scores.
// Fragments are appended conditionally; a weak match can produce an empty
// string.
func buildPros(technical float64, fit behavioralFit, challenge float64, common []string, role types.Role) string {
	var sb strings.Builder

	if technical > prosStrongTechnical {
		named := common
		if len(named) > maxProsSkills {
			named = named[:maxProsSkills]
		}
		sb.WriteString(fmt.Sprintf(
			"Domínio técnico robusto, possuindo quase todas as ferramentas solicitadas (%s...). ",
			strings.Join(named, ", ")))
	} else if technical > prosDecentTechnical {
		sb.WriteString("Conhecimento técnico funcional nas ferramentas essenciais. ")
	}

	if fit.score > prosStrongBehavioral {
		sb.WriteString(fmt.Sprintf(
			"Alinhamento comportamental excepcional para a função de %s, com destaque para alta %s. ",
			role, types.PortugueseTraitLabels[fit.strongest]))
	} else if fit.score > prosDecentBehavioral {
		sb.WriteString(fmt.Sprintf(
			"Perfil equilibrado com bons índices de %s. ",
			types.PortugueseTraitLabels[fit.strongest]))
	}

	if challenge > prosStrongChallenge {
		sb.WriteString("Demonstrou excelente articulação no desafio prático.")
	}

	return strings.TrimSpace(sb.String())
}

// gapInput carries the scoring intermediates the cons rules consume.
type gapInput struct {
	candidate    types.Candidate
	job          types.Job
	technical    float64
	total        float64
	missing      []string
	seniorityGap bool
}

// buildCons derives the risk statements for the recruiter. Rules are
// evaluated in a fixed order; each statement embeds the metric that
// triggered it and an actionable alert. When nothing fired but the match is
// imperfect, a single generic verification statement guarantees the list is
// never empty below the fallback ceiling.
func buildCons(in gapInput) []string {
	gaps := make([]string, 0, 4)
	profile := in.candidate.BigFive

	if profile.Conscientiousness < gapLowConscientiousness {
		gaps = append(gaps, fmt.Sprintf(
			"Risco Operacional (CRM & Processos): Baixa pontuação em disciplina (%d%%). Na rotina de vendas, isso costuma gerar funis desatualizados e follow-ups esquecidos. Alerta: O gestor precisará fazer microgerenciamento diário de tarefas nas primeiras semanas.",
			profile.Conscientiousness))
	}

	if profile.Extraversion < gapLowExtraversion && in.job.Role.ProspectingHeavy() {
		gaps = append(gaps, fmt.Sprintf(
			"Custo Energético na Prospecção: Reserva social identificada (%d%%). O candidato pode performar, mas o 'porta a porta' ou 'cold call' exigirá muito mais energia dele do que de um perfil natural. Alerta: Avaliar risco de burnout rápido em funções de alto volume.",
			profile.Extraversion))
	}

	if profile.Agreeableness > gapHighAgreeableness && in.job.Role.ClosingHeavy() {
		gaps = append(gaps, fmt.Sprintf(
			"Dificuldade em Negociação Dura: Alta amabilidade (%d%%) indica tendência a evitar conflitos. Em fechamentos tensos, pode conceder descontos desnecessários para 'agradar' o lead. Alerta: Necessário roleplay intenso de defesa de preço e objeções duras.",
			profile.Agreeableness))
	}

	if profile.Stability < gapLowStability {
		gaps = append(gaps, fmt.Sprintf(
			"Sensibilidade à Rejeição: Baixa estabilidade (%d%%). A rotina de vendas envolve rejeição constante, o que pode abalar a performance deste perfil mais rapidamente. Alerta: Validar histórico de tolerância à frustração na entrevista.",
			profile.Stability))
	}

	if len(in.missing) > 0 {
		named := in.missing
		suffix := ""
		if len(named) > maxGapSkills {
			named = named[:maxGapSkills]
			suffix = "..."
		}
		gaps = append(gaps, fmt.Sprintf(
			"Curva de Aprendizado Técnica: Ausência de vivência em: %s%s. Isso impactará o ramp-up inicial. Alerta: Planejar treinamento técnico intensivo na primeira semana para mitigar atraso de produtividade.",
			strings.Join(named, ", "), suffix))
	} else if in.technical < gapLowTechnical {
		gaps = append(gaps,
			"Gap de Ferramentas: O candidato não possui experiência comprovada com o stack da empresa. Alerta: Validar agilidade de aprendizado na entrevista.")
	}

	if in.seniorityGap {
		gaps = append(gaps, fmt.Sprintf(
			"Maturidade de Negócios: Perfil %s para vaga %s. Pode faltar \"casca grossa\" para navegar em contas complexas ou falar de igual para igual com C-Level. Alerta: Avalie se a ambição (fome) compensa a falta de quilometragem.",
			in.candidate.Seniority, in.job.Seniority))
	}

	if len(gaps) == 0 && in.total < gapFallbackCeiling {
		gaps = append(gaps,
			"Atenção ao Fit Cultural: O perfil é tecnicamente sólido, mas verifique se a expectativa salarial e de crescimento está alinhada com a realidade da vaga para evitar churn precoce por falta de desafio.")
	}

	return gaps
}
