package training

import (
	"math"
	"strconv"
)

// backend unit codes to the display forms used in messages
var displayUnits = map[string]string{
	"m":   "м",
	"km":  "км",
	"sec": "сек",
	"min": "мин",
	"h":   "ч",
}

// DisplayUnits maps a backend unit code to its display form.
// Unknown codes pass through unchanged.
func DisplayUnits(code string) string {
	if u, ok := displayUnits[code]; ok {
		return u
	}
	return code
}

// DisplayNumber renders a numeric value with zero decimal places,
// rounded for display only.
func DisplayNumber(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
