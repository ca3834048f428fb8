package nlp

import (
	"regexp"
	"time"

	"github.com/FACorreiaa/ledgerbot/internal/domain/ledger"
	"github.com/FACorreiaa/ledgerbot/internal/domain/recurrence"
)

// Patterns match normalized text: lowercased and accent-stripped, so
// "despesa" also covers what users type as "DESPESA" or with stray accents.
var portuguesePack = &LanguagePack{
	Language: "pt-BR",

	Misspellings: map[string]string{
		"dispesa":   "despesa",
		"despeza":   "despesa",
		"gasto":     "despesa",
		"sald":      "saldo",
		"sakdo":     "saldo",
		"dinhero":   "dinheiro",
		"pagamente": "pagamento",
		"paguey":    "paguei",
	},

	PhraseRewrites: []PhraseRewrite{
		{"quanto gastei", "listar despesas"},
		{"quanto eu gastei", "listar despesas"},
		{"quanto recebi", "listar receitas"},
		{"qual meu saldo", "saldo"},
		{"qual e o meu saldo", "saldo"},
		{"situacao financeira", "saldo"},
		{"todas as transacoes", "listar transacoes"},
		{"todas as despesas", "listar despesas"},
		{"minhas despesas", "listar despesas"},
		{"minhas receitas", "listar receitas"},
		{"minhas assinaturas", "listar despesas recorrentes"},
		{"assinaturas", "listar despesas recorrentes"},
	},

	TextRewrites: []TextRewrite{
		// The digit-multiplier form must run first so the bare "mil" rule
		// never splits "2 mil" into "2 1000".
		{regexp.MustCompile(`\b(\d+)\s+mil\b`), "${1}000"},
		{regexp.MustCompile(`\bmil\b`), "1000"},
		{regexp.MustCompile(`\b(\d+)\s*k\b`), "${1}000"},
	},

	IntentPatterns: orderPatterns([]IntentPattern{
		{
			Intent:   IntentAddRecurring,
			Priority: 20,
			Pattern: regexp.MustCompile(`^(?:adicionar|registrar|inserir|nova?|criar|lancar|anotar)\s+(?:uma?\s+)?(?:despesa|gasto|conta|receita)\s+(?:recorrente|fixa|fixo)\b` +
				`|^(?:adicionar|registrar|inserir|nova?|criar|lancar|anotar)\s+(?:uma?\s+)?(?:despesa|gasto|conta|receita)\b.*\b(?:recorrente|fixa|fixo|mensalmente)\b`),
		},
		{
			Intent:   IntentAddInstallment,
			Priority: 20,
			Pattern: regexp.MustCompile(`^(?:adicionar|registrar|inserir|nova?|criar|lancar|anotar|comprar|comprei)\b.*\bem\s+\d+\s+(?:parcelas?|vezes|x)\b` +
				`|^(?:adicionar|registrar|inserir|nova?|criar|lancar|anotar)\s+(?:uma?\s+)?(?:compra\s+)?parcelad[ao]\b`),
		},
		{
			Intent:   IntentListRecurring,
			Priority: 20,
			Pattern:  regexp.MustCompile(`^(?:listar|mostrar|exibir|ver|quais)\b.*\b(?:recorrentes?|fixas?|fixos?)\b`),
		},
		{
			Intent:   IntentListInstallments,
			Priority: 20,
			Pattern:  regexp.MustCompile(`^(?:listar|mostrar|exibir|ver|quais)\b.*\b(?:parcelas?|parcelamentos?|parcelad[ao]s?)\b`),
		},
		{
			Intent:   IntentAddExpense,
			Priority: 10,
			Pattern: regexp.MustCompile(`^(?:adicionar|registrar|inserir|nova?|criar|lancar|anotar)\s+(?:uma?\s+)?(?:despesa|gasto|custo|pagamento|conta|compra)\b` +
				`|^(?:gastei|comprei|paguei)\b`),
		},
		{
			Intent:   IntentAddIncome,
			Priority: 10,
			Pattern: regexp.MustCompile(`^(?:adicionar|registrar|inserir|nova?|criar|lancar|anotar)\s+(?:uma?\s+)?(?:receita|renda|ganho|salario|entrada)\b` +
				`|^(?:recebi|ganhei)\b`),
		},
		{
			Intent:   IntentListTransactions,
			Priority: 10,
			Pattern: regexp.MustCompile(`^(?:listar|mostrar|exibir|ver)\s+(?:minhas\s+|todas\s+(?:as\s+)?)?(?:transacoes|despesas|gastos|receitas|movimentacoes|lancamentos)\b` +
				`|\bquanto\s+(?:eu\s+)?(?:gastei|recebi|ganhei)\b`),
		},
		{
			Intent:   IntentGetBalance,
			Priority: 10,
			Pattern: regexp.MustCompile(`^(?:saldo|resumo|extrato|balanco|total)\b` +
				`|\bquanto\s+(?:eu\s+)?(?:tenho|sobrou|resta|disponivel)\b`),
		},
		{
			Intent:   IntentDeleteTransaction,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:deletar|apagar|remover|excluir|cancelar|desfazer)\s+(?:a\s+|o\s+)?(?:transacao|despesa|receita|lancamento|movimentacao)\b`),
		},
		{
			Intent:   IntentUpdateTransaction,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:atualizar|editar|modificar|alterar|corrigir|ajustar)\s+(?:a\s+|o\s+)?(?:transacao|despesa|receita|lancamento|movimentacao)\b`),
		},
		{
			Intent:   IntentAddCategory,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:adicionar|nova|criar|registrar|inserir)\s+(?:uma?\s+)?categoria\b`),
		},
		{
			Intent:   IntentListCategories,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:listar|mostrar|exibir|ver|quais)\s+(?:as\s+|minhas\s+|todas\s+(?:as\s+)?)?categorias\b`),
		},
		{
			Intent:   IntentHelp,
			Priority: 10,
			Pattern:  regexp.MustCompile(`^(?:ajuda|comandos|instrucoes|manual|tutorial|como\s+usar|o\s+que\s+(?:voce|vc)\s+faz)\b`),
		},
	}),

	Entities: EntityPatterns{
		Amount:             regexp.MustCompile(`(?:r\$\s?)?(\d+[.,]\d{1,2}|\d+)(?:\s+(?:reais|conto|pila))?`),
		CategoryExpense:    regexp.MustCompile(`\b(?:em|de|com|na|no)\s+([a-z][a-z ]*?)(?:\s+(?:de|com|valor|descricao|tags?|prioridade|em|dia|r\$|\d|"|')|$)`),
		CategoryIncome:     regexp.MustCompile(`\b(?:de|como)\s+([a-z][a-z ]*?)(?:\s+(?:de|com|valor|descricao|tags?|prioridade|em|dia|r\$|\d|"|')|$)`),
		CategoryExplicit:   regexp.MustCompile(`\bcategoria\s+([a-z][a-z ]*?)(?:\s+(?:de|com|valor|tipo|descricao|tags?|prioridade|em|dia|r\$|\d|"|')|$)`),
		Description:        regexp.MustCompile(`"([^"]+)"|'([^']+)'`),
		DescriptionNatural: regexp.MustCompile(`\b(?:para|com)\s+([a-z][a-z ]*[a-z])(?:\s+\d|\s+r\$|\s*$)`),
		Date:               regexp.MustCompile(`\b(?:em|dia|data)\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
		DaysAgo:            regexp.MustCompile(`\b(?:ha|faz)\s+(\d+)\s+dias?\b`),
		TransactionID:      regexp.MustCompile(`\bid\s+([a-f0-9-]+)`),
		Period:             regexp.MustCompile(`\b(?:de|entre)\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\s+(?:a|ate|e)\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
		Month:              regexp.MustCompile(`\b(?:em|de|do mes de)\s+(janeiro|fevereiro|marco|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro)\b`),
		CategoryType:       regexp.MustCompile(`\btipo\s+(despesa|receita)\b`),
		UpdateAmount:       regexp.MustCompile(`\bvalor\s+(?:para\s+)?(?:r\$)?\s?(\d+[.,]\d{1,2}|\d+)`),
		UpdateCategory:     regexp.MustCompile(`\bcategoria\s+(?:para\s+)?([a-z][a-z ]*)`),
		UpdateDescription:  regexp.MustCompile(`\bdescricao\s+(?:para\s+)?(?:"([^"]+)"|'([^']+)')`),
		UpdateDate:         regexp.MustCompile(`\bdata\s+(?:para\s+)?(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
		Priority:           regexp.MustCompile(`\b(?:prioridade|importancia)\s+(alta|media|baixa)\b`),
		Frequency:          regexp.MustCompile(`\b(diaria|diario|semanal|quinzenal|mensal|bimestral|trimestral|semestral|anual)(?:mente)?\b`),
		Installments:       regexp.MustCompile(`\bem\s+(\d+)\s+(?:parcelas?|vezes|x)\b`),
		InstallmentsBare:   regexp.MustCompile(`\b(\d+)\s*(?:parcelas?|vezes|x)\b`),
		Tag:                regexp.MustCompile(`\btags?\s+([a-z][a-z, ]*)`),
	},

	Months: map[string]time.Month{
		"janeiro": time.January, "fevereiro": time.February, "marco": time.March,
		"abril": time.April, "maio": time.May, "junho": time.June,
		"julho": time.July, "agosto": time.August, "setembro": time.September,
		"outubro": time.October, "novembro": time.November, "dezembro": time.December,
	},

	TimeExpressions: []TimeExpression{
		{"anteontem", func(now time.Time) time.Time { return now.AddDate(0, 0, -2) }},
		{"ontem", func(now time.Time) time.Time { return now.AddDate(0, 0, -1) }},
		{"hoje", func(now time.Time) time.Time { return now }},
		{"semana passada", func(now time.Time) time.Time { return startOfWeek(now).AddDate(0, 0, -7) }},
		{"esta semana", startOfWeek},
		{"essa semana", startOfWeek},
		{"mes passado", func(now time.Time) time.Time {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		}},
		{"mes anterior", func(now time.Time) time.Time {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		}},
		{"este mes", func(now time.Time) time.Time {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		}},
		{"esse mes", func(now time.Time) time.Time {
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		}},
	},

	Frequencies: map[string]recurrence.Frequency{
		"diaria":     recurrence.Daily,
		"diario":     recurrence.Daily,
		"semanal":    recurrence.Weekly,
		"quinzenal":  recurrence.Biweekly,
		"mensal":     recurrence.Monthly,
		"bimestral":  recurrence.Bimonthly,
		"trimestral": recurrence.Quarterly,
		"semestral":  recurrence.Semiannual,
		"anual":      recurrence.Annual,
	},

	Priorities: map[string]ledger.Priority{
		"alta":  ledger.PriorityHigh,
		"media": ledger.PriorityMedium,
		"baixa": ledger.PriorityLow,
	},

	CategoryKeywords: map[string]string{
		"almoco": "Alimentacao", "jantar": "Alimentacao", "cafe": "Alimentacao",
		"lanche": "Alimentacao", "mercado": "Alimentacao", "restaurante": "Alimentacao",
		"padaria": "Alimentacao", "ifood": "Alimentacao",
		"uber": "Transporte", "taxi": "Transporte", "onibus": "Transporte",
		"metro": "Transporte", "gasolina": "Transporte", "combustivel": "Transporte",
		"estacionamento": "Transporte", "pedagio": "Transporte",
		"aluguel": "Moradia", "condominio": "Moradia", "luz": "Moradia",
		"agua": "Moradia", "internet": "Moradia", "telefone": "Moradia",
		"medico": "Saude", "hospital": "Saude", "farmacia": "Saude",
		"remedio": "Saude", "dentista": "Saude", "terapia": "Saude",
		"escola": "Educacao", "faculdade": "Educacao", "curso": "Educacao",
		"livro": "Educacao", "mensalidade": "Educacao",
		"cinema": "Lazer", "show": "Lazer", "viagem": "Lazer",
		"academia": "Lazer", "streaming": "Lazer", "netflix": "Lazer",
		"spotify": "Lazer",
		"salario": "Salario", "pagamento": "Salario",
		"dividendo": "Investimentos", "juros": "Investimentos", "acao": "Investimentos",
	},

	SuggestedExpenseCategories: []string{"Alimentacao", "Transporte", "Moradia", "Saude", "Lazer"},
	SuggestedIncomeCategories:  []string{"Salario", "Investimentos", "Freelance"},

	CancelWords: []string{"cancelar", "cancela", "deixa pra la", "esquece", "parar"},
	AffirmWords: []string{"sim", "s", "isso", "claro", "ok", "certo", "correto", "pode ser"},

	AddVerbs:         []string{"adicionar", "registrar", "inserir", "nova", "novo", "criar", "lancar", "anotar", "comprei", "comprar", "gastei", "paguei"},
	ListVerbs:        []string{"listar", "mostrar", "exibir", "ver", "quais"},
	ExpenseWords:     []string{"despesa", "despesas", "gasto", "gastos", "gastei", "custo", "conta", "contas"},
	IncomeWords:      []string{"receita", "receitas", "renda", "ganho", "salario", "recebi", "ganhei"},
	RecurringWords:   []string{"recorrente", "recorrentes", "fixa", "fixo", "fixas", "fixos", "assinatura", "mensalmente"},
	InstallmentWords: []string{"parcela", "parcelas", "parcelado", "parcelada", "vezes"},

	ReservedWords: []string{
		"descricao", "categoria", "data", "prioridade", "frequencia",
		"recorrente", "parcela", "parcelas", "vezes", "tag", "tags",
		"mensal", "semanal", "diaria", "anual",
	},

	PopularCommands: []PopularCommand{
		{"adicionar despesa", "adicionar despesa de 50 em Alimentacao"},
		{"adicionar receita", "adicionar receita de 2000 de Salario"},
		{"adicionar despesa recorrente", "adicionar despesa recorrente de 15 em Lazer mensal"},
		{"comprar parcelado", "comprei em 3 parcelas de 90 para fone"},
		{"listar transacoes", "listar transacoes de janeiro"},
		{"listar despesas recorrentes", "listar despesas recorrentes"},
		{"listar parcelas", "listar parcelas"},
		{"saldo", "saldo deste mes"},
		{"deletar transacao", "deletar transacao id 123abc"},
		{"atualizar transacao", "atualizar transacao id 123abc valor para 75,50"},
		{"adicionar categoria", "adicionar categoria Educacao tipo despesa"},
		{"listar categorias", "listar categorias"},
		{"ajuda", "ajuda"},
	},

	Replies: ReplyTemplates{
		AskAmount:        "Nao consegui identificar o valor. Quanto foi?",
		AskCategory:      "Nao consegui identificar a categoria. Qual se encaixa melhor?\n%s",
		AskAgain:         "Desculpe, ainda preciso do campo %s. Pode me dizer so isso?",
		DidYouMean:       "Nao entendi direito. Voce quis dizer '%s'?",
		Canceled:         "Tudo bem, descartei isso. O que voce quer fazer agora?",
		Unknown:          "Nao entendi esse comando. Digite 'ajuda' para ver o que eu sei fazer.",
		Help:             "Aqui esta o que voce pode me pedir:\n%s",
		ExpenseAdded:     "Despesa de %s em %s registrada.",
		IncomeAdded:      "Receita de %s de %s registrada.",
		RecurringAdded:   "Despesa %s de %s em %s configurada. Proxima ocorrencia: %s.",
		InstallmentAdded: "Compra dividida em %d parcelas de %s em %s.",
		Rejected:         "Nao consigo fazer isso: %s",

		ReasonInvalidInstallments: "o numero de parcelas precisa ser pelo menos 1",
		ReasonInvalidRecurrence:   "nao entendi essa regra de repeticao",
	},
}

// PortuguesePack returns the pt-BR language pack.
func PortuguesePack() *LanguagePack { return portuguesePack }
