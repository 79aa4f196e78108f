package training

// Coordination codes, the trainer's shorthand for which half of the body
// a swim exercise isolates. Legs-only and arms-only deliberately carry
// different labels.
const (
	CoordinationFull     = "в/к"  // full coordination, legs and arms
	CoordinationExercise = "упр." // neither, a drill
	CoordinationLegs     = "н/н"
	CoordinationArms     = "н/р"
)

// CoordinationCode maps the legs/arms flags of a swim exercise to the
// trainer's 4-way coordination shorthand.
func CoordinationCode(legs, arms bool) string {
	switch {
	case legs && arms:
		return CoordinationFull
	case legs:
		return CoordinationLegs
	case arms:
		return CoordinationArms
	default:
		return CoordinationExercise
	}
}

const (
	equipKickBoard = " с доской"
	equipPullBuoy  = " с колобашкой"
	equipPaddles   = " с лопатками"
	equipSnorkel   = " с трубкой"
)

// EquipmentCode renders the equipment flags of a swim exercise. The primary
// slot takes the kick board if present, else the pull buoy, never both;
// paddles and snorkel are appended independently. Parts concatenate with no
// separator.
func EquipmentCode(eq Equipment) string {
	var code string
	if eq.KickBoard {
		code = equipKickBoard
	} else if eq.PullBuoy {
		code = equipPullBuoy
	}
	if eq.Paddles {
		code += equipPaddles
	}
	if eq.Snorkel {
		code += equipSnorkel
	}
	return code
}
