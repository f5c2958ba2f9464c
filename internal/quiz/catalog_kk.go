package quiz

var kazakhQuizzes = map[string]Definition{
	KeyStress: {
		Key:   KeyStress,
		Title: "Стресс деңгейі",
		Badge: "🧘",
		Questions: []string{
			"Соңғы аптада жиі мазасызданасыз ба?",
			"Ұйықтау немесе ұйқыдан тұру қиын ба?",
			"Ұсақ нәрселерге тез ашуланасыз ба?",
			"Жұмыс немесе оқу жүктемесі шамадан тыс сияқты ма?",
			"Демалуға уақыт таба алмайсыз ба?",
			"Басыңыз немесе мойныңыз жиі ауыра ма?",
			"Тәбетіңіз өзгерді ме?",
			"Жақындарыңызбен сөйлескіңіз келмейтін кездер көп пе?",
			"Болашақ туралы ойлар мазалай ма?",
			"Зейініңізді бір іске шоғырландыру қиын ба?",
		},
		Ranges: []Range{
			{Max: 3, Level: "Төмен стресс", Advice: "Жақсы тепе-теңдік. Күн тәртібіңізді сақтап, демалысты ұмытпаңыз."},
			{Max: 6, Level: "Орташа стресс", Advice: "Күніне бірнеше рет қысқа үзіліс жасап, тыныс жаттығуын қолданыңыз."},
			{Max: 10, Level: "Жоғары стресс", Advice: "Жүктемені азайтып, жақын адаммен немесе маманмен сөйлесіңіз."},
		},
	},
	KeyPersonality: {
		Key:   KeyPersonality,
		Title: "Тұлға типі",
		Badge: "🧠",
		Questions: []string{
			"Көп адам жиналған ортада күш-қуат аласыз ба?",
			"Жаңа адамдармен оңай танысасыз ба?",
			"Ойыңызды дауыстап айтып шешім қабылдайсыз ба?",
			"Жоспарсыз, кенеттен шыққан істерді ұнатасыз ба?",
			"Демалыс күні үйде отырғаннан гөрі сыртқа шыққанды қалайсыз ба?",
			"Топта бастамашыл болуды ұнатасыз ба?",
			"Сөйлесуді өзіңіз бастайсыз ба?",
			"Жаңа жерлерге баруды жақсы көресіз бе?",
		},
		Ranges: []Range{
			{Max: 2, Level: "Интроверт", Advice: "Жалғыз уақыт сізге күш береді. Шекараңызды сақтап, тыныш демалысты жоспарлаңыз."},
			{Max: 5, Level: "Амбиверт", Advice: "Сіз екі ортада да жайлысыз. Қажетіңізге қарай белсенділік пен тыныштықты алмастырыңыз."},
			{Max: 8, Level: "Экстраверт", Advice: "Адамдармен араласу сізді шабыттандырады. Дегенмен өзіңізге де уақыт бөліңіз."},
		},
	},
	KeyMotivation: {
		Key:   KeyMotivation,
		Title: "Мотивация",
		Badge: "🔥",
		Questions: []string{
			"Таңертең жаңа күнге қуанып оянасыз ба?",
			"Алдыңызда нақты мақсат бар ма?",
			"Бастаған ісіңізді соңына дейін жеткізесіз бе?",
			"Қиындық кезінде тез бас тартпайсыз ба?",
			"Жетістіктеріңізді байқап, өзіңізді мақтайсыз ба?",
			"Жаңа нәрсе үйренуге қызығасыз ба?",
			"Күнделікті істеріңіздің мәні бар деп ойлайсыз ба?",
			"Кейінге қалдыру әдеті сізге сирек тән бе?",
		},
		Ranges: []Range{
			{Max: 2, Level: "Төмен мотивация", Advice: "Бір шағын мақсаттан бастаңыз және әр кішкентай қадамды белгілеңіз."},
			{Max: 5, Level: "Орташа мотивация", Advice: "Мақсаттарыңызды жазып, апта сайын прогресті қарап шығыңыз."},
			{Max: 8, Level: "Жоғары мотивация", Advice: "Керемет! Күшіңізді сақтау үшін демалыс пен жұмысты теңестіріңіз."},
		},
	},
	KeyCareer: {
		Key:   KeyCareer,
		Title: "Мамандық бағыты",
		Badge: "💼",
		Questions: []string{
			"Адамдарға көмектесу сізге ләззат сыйлай ма?",
			"Техника немесе бағдарламалаумен айналысуды ұнатасыз ба?",
			"Сурет салу, музыка немесе дизайнға қызығасыз ба?",
			"Сандармен және талдаумен жұмыс істеу ұнай ма?",
			"Команданы басқаруды қалайсыз ба?",
			"Жаңа идеяларды ойлап табу сізге оңай ма?",
			"Нақты нәтижесі бар практикалық жұмысты ұнатасыз ба?",
			"Болашақ мамандығыңызды елестете аласыз ба?",
		},
		Ranges: []Range{
			{Max: 2, Level: "Ізденіс кезеңі", Advice: "Әртүрлі салада қысқа курс немесе волонтерлік тәжірибе жасап көріңіз."},
			{Max: 5, Level: "Бағыт қалыптасып келеді", Advice: "Қызықтыратын екі-үш салаға назар аударып, маманмен кеңесіңіз."},
			{Max: 8, Level: "Айқын бағыт", Advice: "Мақсатыңыз анық. Қажетті дағдыларды дамытудың жоспарын құрыңыз."},
		},
	},
}
