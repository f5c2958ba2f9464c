package assistant

import "github.com/m3rciful/tynys/internal/domain"

var systemPrompts = map[string]string{
	domain.LangKazakh: "Сен қазақ тілінде сөйлейтін CBT стиліндегі мейірімді көмекші психологсың. " +
		"Әрдайым эмоция, себеп, үш тармақты кеңес және қолдау форматын сақта. " +
		"Диагноз қойма, қысқа әрі анық бол. " +
		"Өзіне зиян келтіру, суицид немесе зорлық туралы мәтін байқалса, дереу жергілікті көмекке жүгіну туралы қауіпсіздік нұсқаулығын қос.",
	domain.LangRussian: "Ты доброжелательный помощник-психолог в стиле КПТ и отвечаешь на русском языке. " +
		"Всегда соблюдай формат: эмоция, причина, совет из трёх пунктов и поддержка. " +
		"Не ставь диагнозов, будь кратким и ясным. " +
		"Если в тексте есть признаки самоповреждения, суицида или насилия, добавь указание немедленно обратиться за местной помощью.",
}

// SystemPrompt is the default system prompt for lang.
func SystemPrompt(lang string) string {
	if p, ok := systemPrompts[lang]; ok {
		return p
	}
	return systemPrompts[domain.LangKazakh]
}

// Coach is a one-shot coaching command answered without chat history.
type Coach struct {
	Command     string
	instruction map[string]string
	usage       map[string]string
}

// Instruction is appended to the system prompt.
func (c *Coach) Instruction(lang string) string {
	return pick(c.instruction, lang)
}

// Usage is shown when the command has no text.
func (c *Coach) Usage(lang string) string {
	return pick(c.usage, lang)
}

func pick(m map[string]string, lang string) string {
	if s, ok := m[lang]; ok {
		return s
	}
	return m[domain.LangKazakh]
}

// Coaches lists the coaching commands.
var Coaches = []*Coach{
	{
		Command: "ai",
		instruction: map[string]string{
			domain.LangKazakh:  "Пайдаланушының мәтініне эмоция, себеп, 3 кеңес және қолдау форматында жауап бер.",
			domain.LangRussian: "Ответь на текст пользователя в формате: эмоция, причина, 3 совета и поддержка.",
		},
		usage: map[string]string{
			domain.LangKazakh:  "/ai кейін мәселе немесе ойыңызды жазыңыз.",
			domain.LangRussian: "Напишите после /ai проблему или мысль.",
		},
	},
	{
		Command: "emo",
		instruction: map[string]string{
			domain.LangKazakh:  "Эмоцияны қысқа ата, ықтимал себепті көрсет және 3 қолдау кеңесін жаз.",
			domain.LangRussian: "Коротко назови эмоцию, укажи возможную причину и дай 3 поддерживающих совета.",
		},
		usage: map[string]string{
			domain.LangKazakh:  "Эмоцияны анықтау үшін /emo кейін мәтін жазыңыз.",
			domain.LangRussian: "Чтобы определить эмоцию, напишите текст после /emo.",
		},
	},
	{
		Command: "reframe",
		instruction: map[string]string{
			domain.LangKazakh:  "Теріс ойды CBT тәсілімен қайта құр: эмоция, себеп, 3 жаңа ой, қолдау.",
			domain.LangRussian: "Переформулируй негативную мысль методом КПТ: эмоция, причина, 3 новые мысли, поддержка.",
		},
		usage: map[string]string{
			domain.LangKazakh:  "Теріс ойды қайта қарау үшін /reframe кейін ойды жазыңыз.",
			domain.LangRussian: "Напишите негативную мысль после /reframe.",
		},
	},
	{
		Command: "decision",
		instruction: map[string]string{
			domain.LangKazakh:  "Проблеманы шешу үшін 3 нақты қадам ұсын. Әр қадам қысқа әрекет болсын.",
			domain.LangRussian: "Предложи 3 конкретных шага для решения проблемы. Каждый шаг должен быть коротким действием.",
		},
		usage: map[string]string{
			domain.LangKazakh:  "Мәселені жазу үшін /decision кейін мәтін қосыңыз.",
			domain.LangRussian: "Опишите проблему после /decision.",
		},
	},
	{
		Command: "stress_ai",
		instruction: map[string]string{
			domain.LangKazakh:  "Мәтінді оқып, стресс деңгейін (төмен/орташа/жоғары) белгіле. Себебін қысқа түсіндіріп, 3 нақты кеңес бер.",
			domain.LangRussian: "Оцени уровень стресса в тексте (низкий/средний/высокий). Кратко объясни причину и дай 3 конкретных совета.",
		},
		usage: map[string]string{
			domain.LangKazakh:  "Стресс туғызатын жағдайды /stress_ai кейін жазыңыз.",
			domain.LangRussian: "Опишите стрессовую ситуацию после /stress_ai.",
		},
	},
	{
		Command: "mental_ai",
		instruction: map[string]string{
			domain.LangKazakh:  "Пайдаланушымен психологиялық қолдау аясында еркін сөйлес. Ашық сұрақ қойып, жылы әрі қысқа жауап бер.",
			domain.LangRussian: "Свободно поговори с пользователем в рамках психологической поддержки. Задай открытый вопрос, отвечай тепло и кратко.",
		},
		usage: map[string]string{
			domain.LangKazakh:  "/mental_ai кейін қызықтыратын психология тақырыбын немесе сұрағыңызды жазыңыз.",
			domain.LangRussian: "Напишите после /mental_ai интересующую тему психологии или вопрос.",
		},
	},
}

// LookupCoach finds a coaching command by name without the slash.
func LookupCoach(command string) (*Coach, bool) {
	for _, c := range Coaches {
		if c.Command == command {
			return c, true
		}
	}
	return nil, false
}
