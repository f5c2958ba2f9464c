package bot

// commandDescriptions are shown in the Telegram command menu.
var commandDescriptions = map[string]string{
	"start":          "Ботты бастау",
	"menu":           "Басты мәзір",
	"checkin":        "Көңіл-күйді белгілеу",
	"mood":           "Көңіл-күйді 1-10 шкаласымен бағалау",
	"stats":          "Апталық статистика",
	"quiz":           "Тест өту: stress, personality, motivation, career",
	"stress_test":    "7 сұрақтық стресс тесті",
	"stress_history": "Стресс тесттерінің нәтижелері",
	"panic":          "Паника кезіндегі жедел көмек",
	"breath":         "4-7-8 тыныс жаттығуы",
	"grounding":      "5-4-3-2-1 жерге бекіну әдісі",
	"selfcare":       "Өзін-өзі күтім идеялары",
	"journal":        "Жазбалық сұрақтар",
	"faq":            "Жиі қойылатын сұрақтар",
	"safety":         "Қауіпсіздік және шұғыл көмек",
	"quote":          "Қолдау цитатасы",
	"language":       "Тілді өзгерту",
	"chat":           "CHAT AI режимі",
	"ai":             "AI кеңесі (CHAT AI режимінде)",
	"emo":            "Эмоцияны анықтау",
	"reframe":        "Теріс ойды қайта қарау",
	"decision":       "Шешім қабылдау қадамдары",
	"stress_ai":      "Стресс деңгейін бағалау",
	"mental_ai":      "Психология тақырыбында сөйлесу",
}

// commandAliases are alternative names routed to the same command.
var commandAliases = map[string][]string{
	"stats":    {"statistics"},
	"language": {"lang"},
}

// coachCommands send a typing action while the assistant answers.
var coachCommands = map[string]struct{}{
	"ai": {}, "emo": {}, "reframe": {}, "decision": {}, "stress_ai": {}, "mental_ai": {},
}

const statusCommand = "/status"
