// internal/periodization/templates.go
package periodization

// WorkoutSlot is a template-defined workout placeholder: a muscle focus,
// a day assignment, and an exercise count awaiting concrete exercises.
type WorkoutSlot struct {
	Name             string
	Focus            string
	EstimatedMinutes int
	// DayOfWeek is 0=Monday through 6=Sunday.
	DayOfWeek        int
	PrimaryMuscles   []string
	SecondaryMuscles []string
	// PreferType narrows selection to one exercise type. Empty means
	// "any", which in practice is strength-biased via sport relevance.
	PreferType    string
	ExerciseCount int
}

// Reusable workout blocks. Each sport template is assembled from these.

func lowerPower(day int) WorkoutSlot {
	return WorkoutSlot{
		Name: "Lower Body Power", Focus: "Quad-dominant strength and explosiveness",
		EstimatedMinutes: 60, DayOfWeek: day,
		PrimaryMuscles:   []string{"quads", "glutes"},
		SecondaryMuscles: []string{"hamstrings", "calves"},
		ExerciseCount:    5,
	}
}

func lowerStability(day int) WorkoutSlot {
	return WorkoutSlot{
		Name: "Hip & Posterior Chain", Focus: "Hamstrings, glutes, hip stability",
		EstimatedMinutes: 55, DayOfWeek: day,
		PrimaryMuscles:   []string{"hamstrings", "glutes"},
		SecondaryMuscles: []string{"abductors", "adductors", "lower_back"},
		ExerciseCount:    5,
	}
}

func upperPull(day int) WorkoutSlot {
	return WorkoutSlot{
		Name: "Upper Body Pull", Focus: "Back strength and grip",
		EstimatedMinutes: 50, DayOfWeek: day,
		PrimaryMuscles:   []string{"upper_back"},
		SecondaryMuscles: []string{"biceps", "core"},
		ExerciseCount:    5,
	}
}

func upperPush(day int) WorkoutSlot {
	return WorkoutSlot{
		Name: "Upper Body Push", Focus: "Chest, shoulder, and tricep strength",
		EstimatedMinutes: 50, DayOfWeek: day,
		PrimaryMuscles:   []string{"chest", "shoulders"},
		SecondaryMuscles: []string{"triceps", "core"},
		ExerciseCount:    5,
	}
}

func coreStability(day int) WorkoutSlot {
	return WorkoutSlot{
		Name: "Core & Stability", Focus: "Core, lateral stability, and balance",
		EstimatedMinutes: 40, DayOfWeek: day,
		PrimaryMuscles:   []string{"core"},
		SecondaryMuscles: []string{"abductors", "adductors", "lower_back"},
		ExerciseCount:    5,
	}
}

func conditioning(day int) WorkoutSlot {
	return WorkoutSlot{
		Name: "Full Body Conditioning", Focus: "Aerobic capacity and movement quality",
		EstimatedMinutes: 40, DayOfWeek: day,
		PrimaryMuscles:   []string{"core", "quads"},
		SecondaryMuscles: []string{"glutes", "shoulders"},
		PreferType:       "cardio",
		ExerciseCount:    5,
	}
}

func plyo(day int) WorkoutSlot {
	return WorkoutSlot{
		Name: "Power & Plyometrics", Focus: "Explosive power and reactive strength",
		EstimatedMinutes: 45, DayOfWeek: day,
		PrimaryMuscles:   []string{"quads", "glutes"},
		SecondaryMuscles: []string{"calves", "core"},
		PreferType:       "plyometric",
		ExerciseCount:    5,
	}
}

// GeneralFitnessSlug is the fallback template for sports without a
// dedicated entry.
const GeneralFitnessSlug = "general-fitness"

// sportTemplates maps sport slug -> workoutsPerWeek -> ordered slots.
// Authored data the engine consumes, not derived.
var sportTemplates = map[string]map[int][]WorkoutSlot{
	"skiing": {
		2: {lowerPower(0), coreStability(3)},
		3: {lowerPower(0), lowerStability(2), coreStability(4)},
		4: {lowerPower(0), lowerStability(1), plyo(3), coreStability(4)},
	},
	"snowboarding": {
		2: {lowerPower(0), coreStability(3)},
		3: {lowerPower(0), lowerStability(2), coreStability(4)},
		4: {lowerPower(0), lowerStability(1), plyo(3), coreStability(4)},
	},
	"mountain-biking": {
		2: {lowerPower(0), coreStability(3)},
		3: {lowerPower(0), upperPull(2), coreStability(4)},
		4: {lowerPower(0), upperPull(1), lowerStability(3), coreStability(4)},
	},
	"road-cycling": {
		2: {lowerPower(0), coreStability(3)},
		3: {lowerPower(0), lowerStability(2), coreStability(4)},
		4: {lowerPower(0), lowerStability(1), coreStability(3), conditioning(4)},
	},
	"trail-running": {
		2: {lowerStability(0), coreStability(3)},
		3: {lowerPower(0), lowerStability(2), coreStability(4)},
		4: {lowerPower(0), lowerStability(1), plyo(3), coreStability(4)},
	},
	"hiking": {
		2: {lowerPower(0), coreStability(3)},
		3: {lowerPower(0), lowerStability(2), coreStability(4)},
		4: {lowerPower(0), lowerStability(1), coreStability(3), conditioning(5)},
	},
	"rock-climbing": {
		2: {upperPull(0), coreStability(3)},
		3: {upperPull(0), coreStability(2), upperPush(4)},
		4: {upperPull(0), coreStability(1), upperPush(3), lowerStability(4)},
	},
	"swimming": {
		2: {upperPull(0), coreStability(3)},
		3: {upperPull(0), upperPush(2), coreStability(4)},
		4: {upperPull(0), upperPush(1), coreStability(3), conditioning(4)},
	},
	"kayaking": {
		2: {upperPull(0), coreStability(3)},
		3: {upperPull(0), coreStability(2), upperPush(4)},
		4: {upperPull(0), coreStability(1), upperPush(3), lowerPower(4)},
	},
	GeneralFitnessSlug: {
		2: {lowerPower(0), upperPull(3)},
		3: {lowerPower(0), upperPull(2), upperPush(4)},
		4: {upperPush(0), upperPull(1), lowerPower(3), coreStability(4)},
	},
}

// SlotsFor returns the ordered workout slots for a sport and weekly
// workout count. Unknown sports use the general-fitness template;
// workoutsPerWeek is clamped to the 2-4 range the templates cover.
func SlotsFor(sportSlug string, workoutsPerWeek int) []WorkoutSlot {
	template, ok := sportTemplates[sportSlug]
	if !ok {
		template = sportTemplates[GeneralFitnessSlug]
	}
	count := workoutsPerWeek
	if count < 2 {
		count = 2
	}
	if count > 4 {
		count = 4
	}
	if slots, ok := template[count]; ok {
		return slots
	}
	return template[3]
}
