package texts

var kazakh = &table{
	messages: map[Key]string{
		StartPrompt:        "Сәлем! Мен «Тыныс», көңіл-күйіңізді қолдауға арналған көмекшімін.\nТөмендегі мәзірден әрекетті таңдаңыз немесе /checkin арқылы бүгінгі күйіңізді белгілеңіз.",
		Greeting:           "Қалайсыз? Бүгін өзіңізді қалай сезінесіз?",
		CheckinPrompt:      "Бүгінгі күйіңізге не көбірек әсер етті?",
		CheckinThanks:      "Бөліскеніңізге рахмет. Жазбаңыз сақталды.",
		ChooseOption:       "Төмендегі батырмалардың бірін таңдаңыз.",
		StepOver:           "Бұл қадам аяқталған. Басты мәзірден жаңа әрекетті таңдаңыз.",
		RetryLater:         "Кешіріңіз, бір нәрсе дұрыс болмады. Сәлден кейін қайталап көріңіз.",
		SaveFailed:         "Кешіріңіз, деректі сақтау мүмкін болмады. Сәлден кейін қайталап көріңіз.",
		QuizIntro:          "%s тесті басталды. Әр сұраққа «Иә» немесе «Жоқ» деп жауап беріңіз.",
		QuizInProgress:     "Тест жүріп жатыр. Жауап беру үшін «Иә» немесе «Жоқ» батырмасын басыңыз.",
		QuizCompleted:      "%s тесті аяқталды!",
		QuizUsage:          "Тестті таңдаңыз: /quiz stress, /quiz personality, /quiz motivation немесе /quiz career.",
		UnknownQuiz:        "Мұндай тест табылмады.",
		ScoreLabel:         "Нәтиже:",
		ResultLabel:        "Деңгей:",
		AdviceLabel:        "Кеңес:",
		StressIntro:        "7 сұрақтан тұратын қысқа стресс тестін өтейік.",
		StressCompleted:    "Стресс тесті аяқталды.",
		StressScoreLabel:   "Балл:",
		StressLevelLabel:   "Стресс деңгейі:",
		StressHistoryTitle: "Соңғы стресс тесттері:",
		StressHistoryEmpty: "Әзірге стресс тесті өтілмеген. /stress_test арқылы бастаңыз.",
		StatsEmpty:         "Соңғы 7 күнде жазба жоқ. Көңіл-күйді /checkin немесе /mood арқылы белгілеңіз.",
		StatsTitle:         "📊 Апталық көңіл-күй шолуы",
		StatsCount:         "Жазбалар саны:",
		StatsAverage:       "Орташа балл:",
		StatsTriggers:      "Жиі себептер:",
		StatsBestDay:       "Ең жақсы күн:",
		StatsWorstDay:      "Ең ауыр күн:",
		MoodUsage:          "Көңіл-күйді 1-ден 10-ға дейін бағалаңыз, мысалы: /mood 7",
		MoodInteger:        "Бүтін сан енгізіңіз, мысалы: /mood 7",
		MoodRange:          "Сан 1 мен 10 аралығында болуы керек.",
		MoodSaved:          "Көңіл-күй бағасы %d/10 сақталды. Рахмет!",
		LanguagePrompt:     "Тілді таңдаңыз:",
		LanguageUpdated:    "Тіл өзгертілді: %s",
		ChatStarted:        "CHAT AI режимі қосылды. Ойыңызды жазыңыз, мен тыңдаймын.\nКоучинг командалары: /ai, /emo, /reframe, /decision, /stress_ai, /mental_ai. Шығу үшін /menu.",
		ChatStopped:        "CHAT AI режимі өшірілді.",
		ChatFallback:       "Кешіріңіз, қазір жауап бере алмадым. Сәлден кейін қайталап көріңіз.",
		ChatRequired:       "Бұл команда тек CHAT AI режимінде жұмыс істейді. Басты мәзірден «🤖 CHAT AI» батырмасын басыңыз.",
		PanicIntro:         "Мына тыныштандыратын жаттығуды бірге жасайық.",
		BreathIntro:        "4-7-8 тыныс жаттығуы:",
		GroundingIntro:     "5-4-3-2-1 әдісі:",
		SelfcareIntro:      "Бүгінгі өзін-өзі күтім идеялары:",
		JournalIntro:       "Жазбалық сұрақтар:",
		FAQIntro:           "Жиі сұрақтар:",
		Safety:             "Қауіпсіздік: егер өзіңізге зиян келтіру ойы болса, дереу 112 немесе 103 нөміріне хабарласыңыз, жақын адамға айтыңыз немесе дәрігерге барыңыз. Сіз жалғыз емессіз.",
		UnknownCommand:     "Мұндай команда жоқ. Басты мәзірді ашу үшін /menu жазыңыз.",
		UnknownMedia:       "Әзірге тек мәтіндік хабарламаларды түсінемін.",
		RateLimited:        "Тым жиі жазып жатырсыз, бір сәт күте тұрыңыз.",
		BackToMenu:         "⬅️ Мәзірге оралу",
		AdminOnly:          "Бұл команда тек әкімшіге қолжетімді.",
		CauseScale:         "Шкала бойынша баға",
		TriggersEmpty:      "жоқ",
	},
	lists: map[ListKey][]string{
		StressQuestions: {
			"Күнделікті істер сізді жиі шаршата ма?",
			"Тыныш жағдайда да босаңсу қиын ба?",
			"Соңғы кезде ұйқыңыз мазасыз ба?",
			"Өзіңізді жиі ширыққан немесе қобалжулы сезінесіз бе?",
			"Назар аудару қиындап кетті ме?",
			"Әдеттегіден жиі ашуланасыз ба?",
			"Бас ауруы немесе дене кернеуі жиі бола ма?",
		},
		PanicBreathingSteps: {
			"Терең дем алыңыз (4 секунд)",
			"Тынысты ұстаңыз (7 секунд)",
			"Баяу дем шығарыңыз (8 секунд)",
		},
		GroundingSteps: {
			"Көріп тұрған 5 нәрсені атаңыз.",
			"Ұстай алатын 4 нәрсені атаңыз.",
			"Естіп тұрған 3 дыбысты атаңыз.",
			"Сезетін 2 иісті атаңыз.",
			"Сезетін 1 дәмді атаңыз.",
		},
		BreathSteps: {
			"1) 4 секунд мұрынмен терең дем алыңыз.",
			"2) 7 секунд тынысты ұстап тұрыңыз.",
			"3) 8 секунд ауызбен баяу шығарыңыз.",
			"4) Жаттығуды 4-8 рет қайталаңыз. Ыңғайлы, тыныш қалыпта жасаңыз.",
		},
		SelfcareTasks: {
			"5 минут тыныс жаттығуы",
			"10 минут таза ауада серуен",
			"1 стақан су ішу",
			"Алғыс айтатын 3 нәрсені жазу",
			"Телефонсыз 15 минут демалу",
			"Бір жақын адамға хабарласу",
		},
		JournalQuestions: {
			"Бүгінгі көңіл-күйімді не жақсартты?",
			"Бүгін қандай қиындық болды және не үйрендім?",
			"Өзімді қолдау үшін қазір не істей аламын?",
			"Мен үшін маңызды адамдар кім және неге?",
			"Қандай шекараны сақтағым келеді?",
		},
		FAQItems: {
			"Бұл медициналық диагноз емес, тек қолдау.",
			"Көңіл-күй жазбалары апталық статистика үшін ғана сақталады.",
			"AI жауаптары қысқа және CBT стилінде беріледі.",
			"Қауіпті жағдайда /safety командасын қараңыз.",
		},
		Quotes: {
			"Сіз ойлағаннан да күштісіз. Бір қадам да алға жылжу.",
			"Демалу да жұмыстың бір бөлігі.",
			"Бүгін қиын болса, ертең жаңа мүмкіндік.",
			"Сезімдеріңіз маңызды, оларды байқау өзіңізге қамқорлық.",
			"Кішкентай жеңістерді де атап өтіңіз.",
			"Көмек сұрау әлсіздік емес, батылдық.",
		},
	},
	moods: []Option{
		{Value: "great", Label: "😊 Керемет"},
		{Value: "fine", Label: "🙂 Жақсы"},
		{Value: "okay", Label: "😐 Орташа"},
		{Value: "bad", Label: "😞 Нашар"},
		{Value: "angry", Label: "😡 Ашулы"},
		{Value: "tired", Label: "😴 Шаршаңқы"},
	},
	causes: []Option{
		{Value: "work", Label: "Жұмыс"},
		{Value: "study", Label: "Оқу"},
		{Value: "sleep", Label: "Ұйқы"},
		{Value: "relationship", Label: "Қарым-қатынас"},
		{Value: "family", Label: "Отбасы"},
		{Value: "unknown", Label: "Белгісіз"},
	},
	answers: []Option{
		{Value: "yes", Label: "Иә"},
		{Value: "no", Label: "Жоқ"},
	},
	levels: map[string]string{
		"low":    "Төмен",
		"medium": "Орташа",
		"high":   "Жоғары",
	},
	menu: [][]MenuItem{
		{{Label: "📝 Көңіл-күй", Action: ActionCheckin}, {Label: "📊 Статистика", Action: ActionStats}},
		{{Label: "😵 Стресс тесті", Action: ActionStressTest}, {Label: "🧘 Стресс деңгейі", Action: ActionQuizStress}},
		{{Label: "🧠 Тұлға типі", Action: ActionQuizPersonality}, {Label: "🔥 Мотивация", Action: ActionQuizMotivation}},
		{{Label: "💼 Мамандық", Action: ActionQuizCareer}, {Label: "🤖 CHAT AI", Action: ActionChat}},
		{{Label: "🆘 Паника", Action: ActionPanic}, {Label: "🌬 Тыныс алу", Action: ActionBreath}},
		{{Label: "✨ Қолдау цитатасы", Action: ActionQuote}, {Label: "🌐 Тіл", Action: ActionLanguage}},
	},
}
