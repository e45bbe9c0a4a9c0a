package game

import (
	"fmt"
	"math/rand"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

// chartLeadIn is the silent run-up before the first note, giving the player
// time to get into frame.
const chartLeadIn = 5.0

// defaultActions are the note types charts draw from.
var defaultActions = []models.Action{
	models.ActionSquat,
	models.ActionHandsUp,
	models.ActionJumpJack,
}

// GenerateChart lays out notes on the beat grid of the given tempo. Each
// note picks a random action and then advances two or four beats, so charts
// breathe instead of firing on every beat. The caller owns the rng; a fixed
// seed reproduces the same chart.
func GenerateChart(bpm float64, duration float64, actions []models.Action, rng *rand.Rand) []models.Note {
	if len(actions) == 0 {
		actions = defaultActions
	}
	beat := 60 / bpm

	var notes []models.Note
	for t := chartLeadIn; t < duration; {
		notes = append(notes, models.Note{
			Time: t,
			Type: actions[rng.Intn(len(actions))],
		})
		step := 4.0
		if rng.Float64() > 0.5 {
			step = 2.0
		}
		t += beat * step
	}
	return notes
}

// levelSeed derives the deterministic chart seed for a stage/level pair, so
// replays of the same level always face the same chart.
func levelSeed(stage, level int) int64 {
	return int64(stage)<<8 | int64(level)
}

type levelSpec struct {
	name string
	bpm  float64
}

type stageSpec struct {
	mediaID string
	actions []models.Action
	levels  []levelSpec
}

// Three stages of five levels: legs only, then core, then full cardio with
// the whole action vocabulary. Tempo rises within each stage.
var stageSpecs = []stageSpec{
	{
		mediaID: "p7ZsBPK656s",
		actions: []models.Action{models.ActionSquat},
		levels: []levelSpec{
			{"Warm Up", 90},
			{"Easy Pace", 100},
			{"Steady Rhythm", 110},
			{"Up Tempo", 120},
			{"Leg Day", 128},
		},
	},
	{
		mediaID: "K4DyBUG242c",
		actions: []models.Action{models.ActionSquat, models.ActionHandsUp},
		levels: []levelSpec{
			{"Core Intro", 100},
			{"Balance", 110},
			{"Coordination", 120},
			{"Core Burn", 130},
			{"Shield Master", 135},
		},
	},
	{
		mediaID: "TW9d8vYrVFQ",
		actions: []models.Action{models.ActionSquat, models.ActionHandsUp, models.ActionJumpJack},
		levels: []levelSpec{
			{"Cardio Start", 130},
			{"Sweat It", 140},
			{"High Energy", 150},
			{"Fat Melt", 160},
			{"Ultimate Burn", 170},
		},
	},
}

const levelDuration = 90

// Levels builds the full level catalog. Charts are generated fresh on each
// call but are deterministic per level via levelSeed.
func Levels() []models.Level {
	var levels []models.Level
	for si, stage := range stageSpecs {
		for li, spec := range stage.levels {
			stageNum, levelNum := si+1, li+1
			rng := rand.New(rand.NewSource(levelSeed(stageNum, levelNum)))
			levels = append(levels, models.Level{
				ID:       levelID(stageNum, levelNum),
				Stage:    stageNum,
				Level:    levelNum,
				Name:     spec.name,
				BPM:      spec.bpm,
				Duration: levelDuration,
				MediaID:  stage.mediaID,
				Notes:    GenerateChart(spec.bpm, levelDuration, stage.actions, rng),
			})
		}
	}
	return levels
}

func levelID(stage, level int) string {
	return fmt.Sprintf("S%dL%d", stage, level)
}
