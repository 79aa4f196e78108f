package training

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNoRecords     = errors.New("no training records")
	ErrInvalidRecord = errors.New("invalid training record")
)

type Type string

const (
	TypeFitness  Type = "fitness"
	TypeSwimming Type = "swimming"
)

// Equipment flags of a single swimming exercise, as sent by the backend.
type Equipment struct {
	KickBoard bool `json:"KickBoard"`
	PullBuoy  bool `json:"PullBuoy"`
	Paddles   bool `json:"Paddles"`
	Snorkel   bool `json:"Snorkel"`
}

type FitnessExercise struct {
	Name      string  `json:"Name"`
	Sets      int     `json:"nSets"`
	Reps      int     `json:"nReps"`
	Time      float64 `json:"Time"`
	TimeUnits string  `json:"TimeUnits"`
	Comments  string  `json:"Comments"`
}

type SwimmingExercise struct {
	Volume      float64   `json:"Volume"`
	VolumeUnits string    `json:"VolumeUnits"`
	Time        float64   `json:"Time"`
	TimeUnits   string    `json:"TimeUnits"`
	Stroke      string    `json:"Stroke"`
	Speed       float64   `json:"Speed"`
	Legs        bool      `json:"Legs"`
	Arms        bool      `json:"Arms"`
	Equipment   Equipment `json:"Equipment"`
	Comments    string    `json:"Comments"`
}

// Record is one training day. The backend discriminates fitness vs swimming
// days with the trainingType tag; exactly one of the Fitness / Swimming
// exercise slices is populated, selected by Type. Location flags are checked
// against the type when decoding, so a constructed Record can always be
// rendered with a simple switch on Type.
type Record struct {
	Type           Type
	InGym          bool
	InSwimmingPool bool

	Year int
	Week int
	Day  int

	Fitness  []FitnessExercise
	Swimming []SwimmingExercise

	TotalNumberExercises int
	TotalTime            float64 // seconds
	TotalVolume          float64
	TotalVolumeUnits     string
}

type recordEnvelope struct {
	TrainingType   string          `json:"trainingType"`
	InGym          bool            `json:"inGym"`
	InSwimmingPool bool            `json:"inSwimmingPool"`
	Year           int             `json:"Year"`
	Week           int             `json:"Week"`
	Day            int             `json:"Day"`
	Exercises      json.RawMessage `json:"Exercises"`

	TotalNumberExercises int     `json:"TotalNumberExercises"`
	TotalTime            float64 `json:"TotalTime"`
	TotalVolume          float64 `json:"TotalVolume"`
	TotalVolumeUnits     string  `json:"TotalVolumeUnits"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var env recordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("unmarshal training record: %w", err)
	}

	if env.Year < 0 || env.Week < 0 || env.Day < 0 {
		return fmt.Errorf("%w: negative year/week/day [%d/%d/%d]", ErrInvalidRecord, env.Year, env.Week, env.Day)
	}

	rec := Record{
		InGym:                env.InGym,
		InSwimmingPool:       env.InSwimmingPool,
		Year:                 env.Year,
		Week:                 env.Week,
		Day:                  env.Day,
		TotalNumberExercises: env.TotalNumberExercises,
		TotalTime:            env.TotalTime,
		TotalVolume:          env.TotalVolume,
		TotalVolumeUnits:     env.TotalVolumeUnits,
	}

	switch Type(env.TrainingType) {
	case TypeFitness:
		if env.InSwimmingPool {
			return fmt.Errorf("%w: fitness training marked as in swimming pool", ErrInvalidRecord)
		}
		rec.Type = TypeFitness
		if len(env.Exercises) > 0 {
			if err := json.Unmarshal(env.Exercises, &rec.Fitness); err != nil {
				return fmt.Errorf("unmarshal fitness exercises: %w", err)
			}
		}
	case TypeSwimming:
		if env.InGym {
			return fmt.Errorf("%w: swimming training marked as in gym", ErrInvalidRecord)
		}
		rec.Type = TypeSwimming
		if len(env.Exercises) > 0 {
			if err := json.Unmarshal(env.Exercises, &rec.Swimming); err != nil {
				return fmt.Errorf("unmarshal swimming exercises: %w", err)
			}
		}
	default:
		return fmt.Errorf("%w: unknown training type [%s]", ErrInvalidRecord, env.TrainingType)
	}

	*r = rec
	return nil
}
