package bot

// User-facing texts. The trainer insists on the tone.
const (
	msgStart      = "Привет, солнышко! Я бот твоего тренера. Выбирай, что будем делать 👇"
	msgStartAdmin = "Привет, %s! Бот на месте и готов к работе 💪"
	msgMenuTitle  = "🔍 Меню"

	msgAccessDenied = "Доступ запрещен."

	msgAskToken     = "Пожалуйста, введите ваш токен:"
	msgNoAccess     = "ОЙ! Доступа нет! :("
	msgNoSuchToken  = "Такого токена нет :("
	msgTokenExpired = "Ой! А доступ уже закончился! Нужно запросить новый!"
	msgTokenOK      = "Отлично! Солнышко, я тебя узнал! Ты моя умничка, давай начнем тренировки!!!"

	msgAskReport = "Напиши, пожалуйста, как прошла тренировочная неделя: " +
		"все ли дни и упражнения получились, было ли что-то сложно и как самочувствие 💌"

	msgTrainFirst = "Сначала нужно потренироваться, солнышко! Активного плана у тебя пока нет 🙈"

	// report already submitted for that week, the backend said 409
	msgReportExists   = "Отчет за КД %d года %d уже отправлен, умничка! Второй раз не нужно 😉"
	msgReportAccepted = "Спасибо за отчет, солнышко! КД %d года %d записан 🎉"

	msgNoPersonalTraining = "На календарную неделю %d тренировочек пока нет 🙈"

	msgRequestTimeout = "Ой, запрос занял слишком много времени. Попробуй, пожалуйста, еще разок чуть позже 🙏"
	msgUnexpectedData = "Ой, пришли какие-то неожиданные данные. Тренер уже в курсе!"
	msgException      = "Произошла ошибка: %s"

	msgDescriptionTitle = "📖 Что умеет этот бот?\n\n"
	msgDescriptionInfo  = "🦾 Получить персональную тренировку - покажу твой план на текущую неделю, " +
		"день за днем, со всеми упражнениями.\n" +
		"💌 Отправить отчет - напиши свободным текстом, как прошла неделя, " +
		"я сам разберу его и передам тренеру.\n" +
		"🔑 Ввести токен - доступ к тренировочкам по токену от тренера.\n"
)

// inline keyboard callback data
const (
	callbackGetTraining    = "get_personal_training"
	callbackSendReport     = "send_report"
	callbackGetDescription = "get_description"
	callbackGetToken       = "get_token"
)

const (
	buttonGetTraining    = "🦾 Получить персональную тренировку"
	buttonSendReport     = "💌 Отправить отчет"
	buttonGetDescription = "📖 Описание"
	buttonGetToken       = "🔑 Ввести токен"
)
