package quiz

var russianQuizzes = map[string]Definition{
	KeyStress: {
		Key:   KeyStress,
		Title: "Уровень стресса",
		Badge: "🧘",
		Questions: []string{
			"Вы часто тревожились на прошлой неделе?",
			"Вам трудно засыпать или просыпаться?",
			"Вы быстро раздражаетесь из-за мелочей?",
			"Нагрузка на работе или учёбе кажется чрезмерной?",
			"Вам не хватает времени на отдых?",
			"У вас часто болит голова или шея?",
			"Изменился ли ваш аппетит?",
			"Часто ли не хочется общаться с близкими?",
			"Мысли о будущем вас беспокоят?",
			"Вам трудно сосредоточиться на одном деле?",
		},
		Ranges: []Range{
			{Max: 3, Level: "Низкий стресс", Advice: "Хороший баланс. Сохраняйте режим дня и не забывайте об отдыхе."},
			{Max: 6, Level: "Средний стресс", Advice: "Делайте короткие перерывы несколько раз в день и используйте дыхательные упражнения."},
			{Max: 10, Level: "Высокий стресс", Advice: "Снизьте нагрузку и поговорите с близким человеком или специалистом."},
		},
	},
	KeyPersonality: {
		Key:   KeyPersonality,
		Title: "Тип личности",
		Badge: "🧠",
		Questions: []string{
			"Вы заряжаетесь энергией в большой компании?",
			"Вам легко знакомиться с новыми людьми?",
			"Вы принимаете решения, проговаривая мысли вслух?",
			"Вам нравятся спонтанные дела без плана?",
			"В выходной вы скорее пойдёте гулять, чем останетесь дома?",
			"Вам нравится быть инициатором в группе?",
			"Вы сами начинаете разговор?",
			"Вы любите бывать в новых местах?",
		},
		Ranges: []Range{
			{Max: 2, Level: "Интроверт", Advice: "Время наедине с собой даёт вам силы. Берегите свои границы и планируйте спокойный отдых."},
			{Max: 5, Level: "Амбиверт", Advice: "Вам комфортно в обеих средах. Чередуйте активность и тишину по своему состоянию."},
			{Max: 8, Level: "Экстраверт", Advice: "Общение вас вдохновляет. Но оставляйте время и для себя."},
		},
	},
	KeyMotivation: {
		Key:   KeyMotivation,
		Title: "Мотивация",
		Badge: "🔥",
		Questions: []string{
			"Вы просыпаетесь с радостью новому дню?",
			"У вас есть конкретная цель?",
			"Вы доводите начатое до конца?",
			"Вы не сдаётесь быстро при трудностях?",
			"Вы замечаете свои успехи и хвалите себя?",
			"Вам интересно учиться новому?",
			"Вы считаете, что ваши ежедневные дела имеют смысл?",
			"Привычка откладывать дела вам редко свойственна?",
		},
		Ranges: []Range{
			{Max: 2, Level: "Низкая мотивация", Advice: "Начните с одной маленькой цели и отмечайте каждый шаг."},
			{Max: 5, Level: "Средняя мотивация", Advice: "Запишите цели и раз в неделю просматривайте прогресс."},
			{Max: 8, Level: "Высокая мотивация", Advice: "Отлично! Чтобы сохранить силы, балансируйте работу и отдых."},
		},
	},
	KeyCareer: {
		Key:   KeyCareer,
		Title: "Профессиональное направление",
		Badge: "💼",
		Questions: []string{
			"Вам приносит удовольствие помогать людям?",
			"Вам нравится техника или программирование?",
			"Вас интересуют рисование, музыка или дизайн?",
			"Вам нравится работать с числами и анализом?",
			"Вы хотели бы руководить командой?",
			"Вам легко придумывать новые идеи?",
			"Вам нравится практическая работа с осязаемым результатом?",
			"Вы можете представить свою будущую профессию?",
		},
		Ranges: []Range{
			{Max: 2, Level: "Период поиска", Advice: "Попробуйте короткие курсы или волонтёрство в разных сферах."},
			{Max: 5, Level: "Направление формируется", Advice: "Сосредоточьтесь на двух-трёх интересных сферах и посоветуйтесь со специалистом."},
			{Max: 8, Level: "Ясное направление", Advice: "Цель понятна. Составьте план развития нужных навыков."},
		},
	},
}
