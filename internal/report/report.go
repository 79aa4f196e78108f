package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Report is the structured form of a client's free-text weekly report, as
// extracted by the completion service. Field defaults match what the trainer
// expects from a silent client: nothing hurts, everything done.
type Report struct {
	IsInjured            bool     `json:"isInjured"`
	AllDaysDone          bool     `json:"allDaysDone"`
	AllExercisesDone     bool     `json:"allExercisesDone"`
	ProblematicExercises []string `json:"ProblematicExercises"`
	Comments             *string  `json:"Comments"`
}

// PlanMetadata identifies which plan a report corresponds to. It is fetched
// from the backend right before submission, so report and plan stay
// consistent even if the chat started in a previous week.
type PlanMetadata struct {
	TgID int64 `json:"TgId"`
	Year int   `json:"Year"`
	Week int   `json:"Week"`
}

// ReportWithMetadata is what gets posted to the backend. Only built through
// NewReportWithMetadata, never assembled field by field.
type ReportWithMetadata struct {
	Report
	TgID int64 `json:"TgId"`
	Year int   `json:"Year"`
	Week int   `json:"Week"`
}

func NewReportWithMetadata(r Report, meta PlanMetadata) ReportWithMetadata {
	return ReportWithMetadata{
		Report: r,
		TgID:   meta.TgID,
		Year:   meta.Year,
		Week:   meta.Week,
	}
}

// Parse strictly decodes a report JSON document. Unknown fields fail; absent
// fields keep their defaults. The returned report always carries a non-nil
// (possibly empty) ProblematicExercises slice.
func Parse(data []byte) (Report, error) {
	r := Report{
		AllDaysDone:          true,
		AllExercisesDone:     true,
		ProblematicExercises: []string{},
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}

	if r.ProblematicExercises == nil {
		r.ProblematicExercises = []string{}
	}

	return r, nil
}
