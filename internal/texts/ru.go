package texts

var russian = &table{
	messages: map[Key]string{
		StartPrompt:        "Привет! Я «Тыныс», помощник для поддержки вашего настроения.\nВыберите действие в меню ниже или отметьте самочувствие через /checkin.",
		Greeting:           "Как вы себя чувствуете сегодня?",
		CheckinPrompt:      "Что сильнее всего повлияло на ваше состояние?",
		CheckinThanks:      "Спасибо, что поделились. Запись сохранена.",
		ChooseOption:       "Выберите один из вариантов на кнопках ниже.",
		StepOver:           "Этот шаг уже завершён. Выберите новое действие в главном меню.",
		RetryLater:         "Что-то пошло не так. Попробуйте ещё раз чуть позже.",
		SaveFailed:         "Не удалось сохранить данные. Попробуйте ещё раз чуть позже.",
		QuizIntro:          "Тест %s начался. Отвечайте «Да» или «Нет» на каждый вопрос.",
		QuizInProgress:     "Идёт тест. Чтобы ответить, нажмите «Да» или «Нет».",
		QuizCompleted:      "Тест %s завершён!",
		QuizUsage:          "Выберите тест: /quiz stress, /quiz personality, /quiz motivation или /quiz career.",
		UnknownQuiz:        "Такой тест не найден.",
		ScoreLabel:         "Результат:",
		ResultLabel:        "Уровень:",
		AdviceLabel:        "Совет:",
		StressIntro:        "Пройдём короткий стресс-тест из 7 вопросов.",
		StressCompleted:    "Стресс-тест завершён.",
		StressScoreLabel:   "Баллы:",
		StressLevelLabel:   "Уровень стресса:",
		StressHistoryTitle: "Последние стресс-тесты:",
		StressHistoryEmpty: "Вы ещё не проходили стресс-тест. Начните с /stress_test.",
		StatsEmpty:         "За последние 7 дней записей нет. Отметьте настроение через /checkin или /mood.",
		StatsTitle:         "📊 Обзор настроения за неделю",
		StatsCount:         "Количество записей:",
		StatsAverage:       "Средний балл:",
		StatsTriggers:      "Частые причины:",
		StatsBestDay:       "Лучший день:",
		StatsWorstDay:      "Самый тяжёлый день:",
		MoodUsage:          "Оцените настроение от 1 до 10, например: /mood 7",
		MoodInteger:        "Введите целое число, например: /mood 7",
		MoodRange:          "Число должно быть от 1 до 10.",
		MoodSaved:          "Оценка настроения %d/10 сохранена. Спасибо!",
		LanguagePrompt:     "Выберите язык:",
		LanguageUpdated:    "Язык изменён: %s",
		ChatStarted:        "Режим CHAT AI включён. Напишите, что вас беспокоит, я слушаю.\nКоучинг-команды: /ai, /emo, /reframe, /decision, /stress_ai, /mental_ai. Выход: /menu.",
		ChatStopped:        "Режим CHAT AI выключен.",
		ChatFallback:       "Извините, сейчас не получилось ответить. Попробуйте ещё раз чуть позже.",
		ChatRequired:       "Эта команда работает только в режиме CHAT AI. Нажмите «🤖 CHAT AI» в главном меню.",
		PanicIntro:         "Давайте вместе выполним успокаивающее упражнение.",
		BreathIntro:        "Дыхательная техника 4-7-8:",
		GroundingIntro:     "Техника 5-4-3-2-1:",
		SelfcareIntro:      "Идеи заботы о себе на сегодня:",
		JournalIntro:       "Вопросы для дневника:",
		FAQIntro:           "Частые вопросы:",
		Safety:             "Безопасность: если у вас есть мысли навредить себе, срочно позвоните 112 или 103, расскажите близкому человеку или обратитесь к врачу. Вы не одни.",
		UnknownCommand:     "Такой команды нет. Откройте главное меню через /menu.",
		UnknownMedia:       "Пока я понимаю только текстовые сообщения.",
		RateLimited:        "Вы пишете слишком часто, подождите немного.",
		BackToMenu:         "⬅️ В меню",
		AdminOnly:          "Команда доступна только администратору.",
		CauseScale:         "Оценка по шкале",
		TriggersEmpty:      "нет",
	},
	lists: map[ListKey][]string{
		StressQuestions: {
			"Повседневные дела часто вас перегружают?",
			"Вам трудно расслабиться даже в спокойной обстановке?",
			"В последнее время ваш сон беспокойный?",
			"Вы часто чувствуете напряжение или тревогу?",
			"Вам стало труднее сосредоточиться?",
			"Вы раздражаетесь чаще обычного?",
			"У вас часто бывают головные боли или напряжение в теле?",
		},
		PanicBreathingSteps: {
			"Сделайте глубокий вдох (4 секунды)",
			"Задержите дыхание (7 секунд)",
			"Медленно выдохните (8 секунд)",
		},
		GroundingSteps: {
			"Назовите 5 вещей, которые вы видите.",
			"Назовите 4 вещи, которых можете коснуться.",
			"Назовите 3 звука, которые слышите.",
			"Назовите 2 запаха, которые чувствуете.",
			"Назовите 1 вкус, который ощущаете.",
		},
		BreathSteps: {
			"1) Медленно вдохните носом на 4 счёта.",
			"2) Задержите дыхание на 7 счётов.",
			"3) Медленно выдохните ртом на 8 счётов.",
			"4) Повторите 4-8 раз в спокойном удобном положении.",
		},
		SelfcareTasks: {
			"5 минут дыхательной практики",
			"10 минут прогулки на свежем воздухе",
			"Выпить стакан воды",
			"Записать 3 вещи, за которые вы благодарны",
			"15 минут отдыха без телефона",
			"Написать близкому человеку",
		},
		JournalQuestions: {
			"Что сегодня улучшило моё настроение?",
			"Какая трудность была сегодня и чему я научился?",
			"Что я могу сделать сейчас, чтобы поддержать себя?",
			"Кто для меня важен и почему?",
			"Какие границы я хочу сохранить?",
		},
		FAQItems: {
			"Это не медицинский диагноз, а только поддержка.",
			"Записи настроения хранятся только для недельной статистики.",
			"Ответы AI короткие и в стиле КПТ.",
			"В опасной ситуации откройте /safety.",
		},
		Quotes: {
			"Вы сильнее, чем думаете. Даже маленький шаг это движение вперёд.",
			"Отдых тоже часть работы.",
			"Если сегодня трудно, завтра будет новая возможность.",
			"Ваши чувства важны, замечать их значит заботиться о себе.",
			"Отмечайте даже маленькие победы.",
			"Просить о помощи это смелость, а не слабость.",
		},
	},
	moods: []Option{
		{Value: "great", Label: "😊 Отлично"},
		{Value: "fine", Label: "🙂 Хорошо"},
		{Value: "okay", Label: "😐 Нормально"},
		{Value: "bad", Label: "😞 Плохо"},
		{Value: "angry", Label: "😡 Злюсь"},
		{Value: "tired", Label: "😴 Устал(а)"},
	},
	causes: []Option{
		{Value: "work", Label: "Работа"},
		{Value: "study", Label: "Учёба"},
		{Value: "sleep", Label: "Сон"},
		{Value: "relationship", Label: "Отношения"},
		{Value: "family", Label: "Семья"},
		{Value: "unknown", Label: "Не знаю"},
	},
	answers: []Option{
		{Value: "yes", Label: "Да"},
		{Value: "no", Label: "Нет"},
	},
	levels: map[string]string{
		"low":    "Низкий",
		"medium": "Средний",
		"high":   "Высокий",
	},
	menu: [][]MenuItem{
		{{Label: "📝 Настроение", Action: ActionCheckin}, {Label: "📊 Статистика", Action: ActionStats}},
		{{Label: "😵 Стресс-тест", Action: ActionStressTest}, {Label: "🧘 Уровень стресса", Action: ActionQuizStress}},
		{{Label: "🧠 Тип личности", Action: ActionQuizPersonality}, {Label: "🔥 Мотивация", Action: ActionQuizMotivation}},
		{{Label: "💼 Профессия", Action: ActionQuizCareer}, {Label: "🤖 CHAT AI", Action: ActionChat}},
		{{Label: "🆘 Паника", Action: ActionPanic}, {Label: "🌬 Дыхание", Action: ActionBreath}},
		{{Label: "✨ Цитата поддержки", Action: ActionQuote}, {Label: "🌐 Язык", Action: ActionLanguage}},
	},
}
