package training

import (
	"fmt"
	"strings"
)

const (
	// speed of a swim exercise is graded by the trainer on a fixed scale
	speedScaleMax = 10

	separatorWidth = 30

	exercisesHeader = "Твои упражнения на сегодня:\n"

	titleGym       = "🏋️‍♀️ Ой, как здорово! Сегодня тренировочка в тренажерном зале! 💪\n"
	titleOutdoor   = "🌳 Ура! Сегодня тренируемся на свежем воздухе! 🍃\n"
	titlePool      = "🏊‍♀️ Ой, как здорово! Сегодня тренировочка в бассейне! 💦\n"
	titleOpenWater = "🌊 Ура! Сегодня плаваем в открытой воде! ☀️\n"
)

// Separator divides rendered days in the final text.
func Separator() string {
	return strings.Repeat("-", separatorWidth) + "\n"
}

// RenderWeek converts a week of training records into the text sent to the
// client: per-day titles, numbered exercises, day totals, then a week total.
// An empty week is rejected rather than rendered as empty text.
func RenderWeek(records []Record) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("%w: empty week", ErrNoRecords)
	}

	days := make([]string, 0, len(records))
	for _, rec := range records {
		days = append(days, renderDay(rec))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(days, Separator()))
	sb.WriteString(fmt.Sprintf("\n📅 Всего тренировок на этой неделе: %d", len(records)))
	return sb.String(), nil
}

func renderDay(rec Record) string {
	output := []string{
		fmt.Sprintf("День %d КД %d Год %d - еще одна тренировочка, солнышко!!! 🌞\n", rec.Day, rec.Week, rec.Year),
		dayTitle(rec),
		exercisesHeader,
	}

	switch rec.Type {
	case TypeFitness:
		for i, ex := range rec.Fitness {
			output = append(output, renderFitnessExercise(i+1, ex))
		}
	case TypeSwimming:
		for i, ex := range rec.Swimming {
			output = append(output, renderSwimmingExercise(i+1, ex))
		}
	}

	output = append(output, fmt.Sprintf("\n🔥 Всего упражнений сегодня: %d - ты молодец!", rec.TotalNumberExercises))
	if rec.TotalTime != 0 {
		totalMinutes := int(rec.TotalTime) / 60
		output = append(output, fmt.Sprintf("⏱ Общее время тренировки: примерно %d минут - замечательно!", totalMinutes))
	}
	if rec.TotalVolume != 0 {
		output = append(output, fmt.Sprintf("🏊 Общий объем: %s %s - отлично!", DisplayNumber(rec.TotalVolume), DisplayUnits(rec.TotalVolumeUnits)))
	}

	return strings.Join(output, "\n") + "\n"
}

// dayTitle picks one of the four fixed titles. The type/location combination
// was already validated when the record was decoded, so the selection is
// exhaustive over the two types.
func dayTitle(rec Record) string {
	if rec.Type == TypeFitness {
		if rec.InGym {
			return titleGym
		}
		return titleOutdoor
	}
	if rec.InSwimmingPool {
		return titlePool
	}
	return titleOpenWater
}

func renderFitnessExercise(index int, ex FitnessExercise) string {
	var line string
	if ex.Time != 0 {
		line = fmt.Sprintf("%d. %s - %d серии по %s %s. 🌟", index, ex.Name, ex.Sets, DisplayNumber(ex.Time), DisplayUnits(ex.TimeUnits))
	} else {
		line = fmt.Sprintf("%d. %s - %d серии по %d повторений. ✨", index, ex.Name, ex.Sets, ex.Reps)
	}
	if ex.Comments != "" {
		line += fmt.Sprintf("\n    💬 Комментарии: %s\n", ex.Comments)
	}
	return line
}

func renderSwimmingExercise(index int, ex SwimmingExercise) string {
	// volume is authoritative when present, time otherwise
	var amount string
	if ex.Volume != 0 {
		amount = fmt.Sprintf("%s %s", DisplayNumber(ex.Volume), DisplayUnits(ex.VolumeUnits))
	} else {
		amount = fmt.Sprintf("%s %s", DisplayNumber(ex.Time), DisplayUnits(ex.TimeUnits))
	}

	line := fmt.Sprintf(
		"%d. %s %s %s%s, скорость %s из %d. 🐬",
		index, amount, ex.Stroke,
		CoordinationCode(ex.Legs, ex.Arms), EquipmentCode(ex.Equipment),
		DisplayNumber(ex.Speed), speedScaleMax,
	)
	if ex.Comments != "" {
		line += fmt.Sprintf("\n    💬 Комментарии: %s\n", ex.Comments)
	}
	return line
}

// Chunks splits text into pieces of at most size characters for the
// transport layer. Boundaries are pure character slices, not word aware;
// concatenating the chunks reproduces the text exactly.
func Chunks(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size < 1 {
		return []string{text}
	}

	runes := []rune(text)
	chunks := make([]string, 0, len(runes)/size+1)
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}
