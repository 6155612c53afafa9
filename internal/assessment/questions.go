// Package assessment converts raw questionnaire answers into a normalized
// psychometric profile plus a social-desirability (sincerity) signal.
package assessment

// Category tags a questionnaire item with the dimension it measures.
// The control category holds lie-scale trap items that feed the sincerity
// score instead of the personality profile.
type Category string

// Item categories.
const (
	CategoryOpenness          Category = "openness"
	CategoryConscientiousness Category = "conscientiousness"
	CategoryExtraversion      Category = "extraversion"
	CategoryAgreeableness     Category = "agreeableness"
	CategoryStability         Category = "stability"
	CategoryControl           Category = "control"
)

// Question is one item of the intake questionnaire. Inverted items state the
// opposite of the trait (e.g. "I get stressed easily" for stability) and have
// their Likert answer reflected before aggregation.
type Question struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Inverted bool     `json:"inverted,omitempty"`
}

// QuestionCount is the number of items in the intake questionnaire.
const QuestionCount = 30

// Questions returns the intake questionnaire: 30 items in five blocks of
// six, one item per category in each block.
func Questions() []Question {
	return []Question{
		// Block 1
		{Text: "Busco constantemente novas ferramentas e métodos para vender melhor.", Category: CategoryOpenness},
		{Text: "Sigo o processo de vendas (cadência) à risca, sem pular etapas.", Category: CategoryConscientiousness},
		{Text: "Geralmente inicio conversas com pessoas desconhecidas.", Category: CategoryExtraversion},
		{Text: "Tenho pouca paciência com clientes indecisos.", Category: CategoryAgreeableness, Inverted: true},
		{Text: "Fico estressado facilmente com metas agressivas.", Category: CategoryStability, Inverted: true},
		{Text: "Nunca senti inveja de ninguém em toda minha vida.", Category: CategoryControl},

		// Block 2
		{Text: "Prefiro tarefas rotineiras a ter que aprender algo novo todo dia.", Category: CategoryOpenness, Inverted: true},
		{Text: "Mantenho meu CRM impecavelmente atualizado todos os dias.", Category: CategoryConscientiousness},
		{Text: "Sinto-me energizado após passar o dia falando com clientes.", Category: CategoryExtraversion},
		{Text: "Preocupo-me genuinamente com o problema do cliente, não só com a comissão.", Category: CategoryAgreeableness},
		{Text: "Consigo manter a calma mesmo quando o cliente é agressivo.", Category: CategoryStability},
		{Text: "Sempre cumpri 100% das promessas que fiz, sem exceção.", Category: CategoryControl},

		// Block 3
		{Text: "Gosto de testar abordagens diferentes, mesmo que as atuais funcionem.", Category: CategoryOpenness},
		{Text: "Deixo as coisas para a última hora com frequência.", Category: CategoryConscientiousness, Inverted: true},
		{Text: "Sou uma pessoa reservada e quieta.", Category: CategoryExtraversion, Inverted: true},
		{Text: "Evito conflitos desnecessários com clientes, buscando o ganha-ganha.", Category: CategoryAgreeableness},
		{Text: "Raramente levo problemas do trabalho para o lado pessoal.", Category: CategoryStability},
		{Text: "Nunca falei mal de ninguém pelas costas.", Category: CategoryControl},

		// Block 4
		{Text: "Tenho dificuldade para entender tecnologias complexas.", Category: CategoryOpenness, Inverted: true},
		{Text: "Defino metas pessoais acima das metas da empresa.", Category: CategoryConscientiousness},
		{Text: "Gosto de ser o centro das atenções em apresentações.", Category: CategoryExtraversion},
		{Text: "Desconfio das intenções das pessoas inicialmente.", Category: CategoryAgreeableness, Inverted: true},
		{Text: "Meu humor oscila bastante durante o dia.", Category: CategoryStability, Inverted: true},
		{Text: "Sempre sei exatamente o que dizer em qualquer situação.", Category: CategoryControl},

		// Block 5
		{Text: "Vejo objeções de clientes como oportunidades criativas.", Category: CategoryOpenness},
		{Text: "Planejo meu dia de trabalho com antecedência.", Category: CategoryConscientiousness},
		{Text: "Prefiro trabalhar sozinho a trabalhar em equipe.", Category: CategoryExtraversion, Inverted: true},
		{Text: "Colegas costumam me procurar para pedir ajuda ou conselhos.", Category: CategoryAgreeableness},
		{Text: "Não me abalo emocionalmente com um 'não' agressivo.", Category: CategoryStability},
		{Text: "Nunca adiei uma tarefa que precisava fazer.", Category: CategoryControl},
	}
}
