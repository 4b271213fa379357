package seed

import "athme/training-app/internal/domain"

// exerciseLibrary is the built-in exercise catalog. Relevance scores
// (1-10) are keyed by sport slug; only sports scoring 5 or higher are
// listed for each exercise.
var exerciseLibrary = []domain.Exercise{
	{
		Name:        "Back Squat",
		Description: "Compound lower body movement with barbell on upper back",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "hamstrings", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 10},
			{SportSlug: "snowboarding", Score: 10},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "hiking", Score: 8},
			{SportSlug: "trail-running", Score: 6},
			{SportSlug: "road-cycling", Score: 7},
			{SportSlug: "general-fitness", Score: 9},
			{SportSlug: "rock-climbing", Score: 5},
		},
	},
	{
		Name:        "Front Squat",
		Description: "Squat with barbell in front rack position — demands more core and quad",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "core", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 9},
			{SportSlug: "snowboarding", Score: 9},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "trail-running", Score: 5},
			{SportSlug: "general-fitness", Score: 8},
		},
	},
	{
		Name:        "Goblet Squat",
		Description: "Squat holding a kettlebell at chest — great for squat mechanics and core",
		Type:        domain.TypeStrength,
		Equipment:   "kettlebell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "trail-running", Score: 6},
			{SportSlug: "general-fitness", Score: 8},
		},
	},
	{
		Name:        "Bulgarian Split Squat",
		Description: "Single-leg squat with rear foot elevated — maximum quad and glute load",
		Type:        domain.TypeStrength,
		Equipment:   "dumbbell",
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "hamstrings", Role: domain.RoleSecondary},
			{Group: "adductors", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 9},
			{SportSlug: "snowboarding", Score: 9},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "hiking", Score: 8},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "rock-climbing", Score: 6},
		},
	},
	{
		Name:        "Reverse Lunges",
		Description: "Step back into a lunge — easier on the knees than forward lunges",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "hamstrings", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "hiking", Score: 8},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Walking Lunges",
		Description: "Alternating forward lunges with continuous forward movement",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "hamstrings", Role: domain.RoleSecondary},
			{Group: "calves", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "hiking", Score: 9},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Step-Ups",
		Description: "Single-leg step onto a bench or box — mimics uphill hiking mechanics",
		Type:        domain.TypeStrength,
		Equipment:   "box",
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "calves", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "hiking", Score: 10},
			{SportSlug: "trail-running", Score: 9},
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Romanian Deadlift",
		Description: "Hip-hinge deadlift variation targeting hamstrings and glutes",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "hamstrings", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "lower_back", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "hiking", Score: 8},
			{SportSlug: "general-fitness", Score: 9},
			{SportSlug: "road-cycling", Score: 7},
		},
	},
	{
		Name:        "Deadlift",
		Description: "Full pull from the floor — king of posterior chain exercises",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "hamstrings", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "lower_back", Role: domain.RolePrimary},
			{Group: "quads", Role: domain.RoleSecondary},
			{Group: "upper_back", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "trail-running", Score: 6},
			{SportSlug: "general-fitness", Score: 10},
			{SportSlug: "rock-climbing", Score: 6},
		},
	},
	{
		Name:        "Single-Leg Deadlift",
		Description: "Hip hinge on one leg — builds posterior chain and balance simultaneously",
		Type:        domain.TypeStrength,
		Equipment:   "dumbbell",
		Muscles: []domain.ExerciseMuscle{
			{Group: "hamstrings", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "core", Role: domain.RoleSecondary},
			{Group: "lower_back", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "trail-running", Score: 9},
			{SportSlug: "hiking", Score: 9},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
		},
	},
	{
		Name:        "Hip Thrust",
		Description: "Barbell glute bridge — the best exercise for maximal glute activation",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "hamstrings", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 9},
			{SportSlug: "snowboarding", Score: 9},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "road-cycling", Score: 8},
			{SportSlug: "general-fitness", Score: 8},
		},
	},
	{
		Name:        "Glute Bridge",
		Description: "Bodyweight hip extension — foundational glute activation",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "hamstrings", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "trail-running", Score: 6},
			{SportSlug: "hiking", Score: 6},
			{SportSlug: "general-fitness", Score: 7},
			{SportSlug: "road-cycling", Score: 6},
		},
	},
	{
		Name:        "Calf Raises",
		Description: "Standing calf raise for ankle stability and lower leg strength",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "calves", Role: domain.RolePrimary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "trail-running", Score: 9},
			{SportSlug: "hiking", Score: 9},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "general-fitness", Score: 6},
		},
	},
	{
		Name:        "Leg Press",
		Description: "Machine compound press — high volume quad and glute work with minimal spinal load",
		Type:        domain.TypeStrength,
		Equipment:   "machine",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RoleSecondary},
			{Group: "hamstrings", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "hiking", Score: 6},
			{SportSlug: "trail-running", Score: 5},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "road-cycling", Score: 6},
		},
	},
	{
		Name:        "Leg Curl",
		Description: "Machine hamstring isolation — great accessory for posterior chain balance",
		Type:        domain.TypeStrength,
		Equipment:   "machine",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "hamstrings", Role: domain.RolePrimary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "trail-running", Score: 6},
			{SportSlug: "general-fitness", Score: 7},
			{SportSlug: "road-cycling", Score: 5},
		},
	},
	{
		Name:        "Good Mornings",
		Description: "Hip hinge with barbell on back — teaches the hinge pattern and loads the hamstrings",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "hamstrings", Role: domain.RolePrimary},
			{Group: "lower_back", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "hiking", Score: 6},
			{SportSlug: "trail-running", Score: 5},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Box Jump",
		Description: "Explosive jump onto a box — develops power and landing mechanics",
		Type:        domain.TypePlyometric,
		Equipment:   "box",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "calves", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 10},
			{SportSlug: "snowboarding", Score: 10},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "hiking", Score: 5},
		},
	},
	{
		Name:        "Lateral Bounds",
		Description: "Side-to-side single-leg hops — mimics the lateral push-off in skiing and skating",
		Type:        domain.TypePlyometric,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "abductors", Role: domain.RolePrimary},
			{Group: "adductors", Role: domain.RoleSecondary},
			{Group: "calves", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 10},
			{SportSlug: "snowboarding", Score: 10},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Jump Squat",
		Description: "Explosive squat jump — builds reactive power in the legs",
		Type:        domain.TypePlyometric,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "calves", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 9},
			{SportSlug: "snowboarding", Score: 9},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "hiking", Score: 5},
		},
	},
	{
		Name:        "Depth Drop",
		Description: "Step off a box and absorb the landing — trains reactive landing mechanics",
		Type:        domain.TypePlyometric,
		Equipment:   "box",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "calves", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "general-fitness", Score: 6},
		},
	},
	{
		Name:        "Push-Ups",
		Description: "Classic bodyweight pressing movement — builds chest, shoulders, and triceps",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "chest", Role: domain.RolePrimary},
			{Group: "shoulders", Role: domain.RolePrimary},
			{Group: "triceps", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 7},
			{SportSlug: "swimming", Score: 7},
			{SportSlug: "kayaking", Score: 7},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "skiing", Score: 5},
		},
	},
	{
		Name:        "Bench Press",
		Description: "Horizontal barbell press — primary chest and anterior shoulder developer",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "chest", Role: domain.RolePrimary},
			{Group: "triceps", Role: domain.RoleSecondary},
			{Group: "shoulders", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "general-fitness", Score: 9},
			{SportSlug: "rock-climbing", Score: 5},
			{SportSlug: "swimming", Score: 6},
			{SportSlug: "kayaking", Score: 6},
			{SportSlug: "mountain-biking", Score: 5},
		},
	},
	{
		Name:        "Overhead Press",
		Description: "Standing barbell press — builds shoulder strength and core stability",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "shoulders", Role: domain.RolePrimary},
			{Group: "triceps", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
			{Group: "upper_back", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "kayaking", Score: 7},
			{SportSlug: "swimming", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "skiing", Score: 5},
			{SportSlug: "snowboarding", Score: 5},
		},
	},
	{
		Name:        "Dumbbell Shoulder Press",
		Description: "Seated or standing dumbbell press — allows greater range of motion than barbell",
		Type:        domain.TypeStrength,
		Equipment:   "dumbbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "shoulders", Role: domain.RolePrimary},
			{Group: "triceps", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "general-fitness", Score: 7},
			{SportSlug: "kayaking", Score: 6},
			{SportSlug: "swimming", Score: 6},
			{SportSlug: "mountain-biking", Score: 5},
			{SportSlug: "skiing", Score: 5},
		},
	},
	{
		Name:        "Pike Push-Ups",
		Description: "Bodyweight vertical pressing — targets shoulders with no equipment",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "shoulders", Role: domain.RolePrimary},
			{Group: "triceps", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 7},
			{SportSlug: "swimming", Score: 6},
			{SportSlug: "kayaking", Score: 6},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Pull-Ups",
		Description: "Vertical pulling — builds lat strength and grip essential for climbing",
		Type:        domain.TypeStrength,
		Equipment:   "pull_up_bar",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "biceps", Role: domain.RolePrimary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 10},
			{SportSlug: "kayaking", Score: 8},
			{SportSlug: "swimming", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "skiing", Score: 5},
		},
	},
	{
		Name:        "Chin-Ups",
		Description: "Supinated-grip pull-up — emphasizes biceps more than pull-ups",
		Type:        domain.TypeStrength,
		Equipment:   "pull_up_bar",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "biceps", Role: domain.RolePrimary},
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 10},
			{SportSlug: "kayaking", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "mountain-biking", Score: 5},
			{SportSlug: "skiing", Score: 5},
		},
	},
	{
		Name:        "Lat Pulldown",
		Description: "Cable vertical pull — same pattern as pull-ups with adjustable weight",
		Type:        domain.TypeStrength,
		Equipment:   "cable",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "biceps", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 9},
			{SportSlug: "kayaking", Score: 8},
			{SportSlug: "swimming", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "mountain-biking", Score: 6},
		},
	},
	{
		Name:        "Barbell Row",
		Description: "Horizontal barbell pull — builds upper back thickness and lat strength",
		Type:        domain.TypeStrength,
		Equipment:   "barbell",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "biceps", Role: domain.RoleSecondary},
			{Group: "lower_back", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 8},
			{SportSlug: "kayaking", Score: 9},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "skiing", Score: 6},
			{SportSlug: "snowboarding", Score: 6},
			{SportSlug: "mountain-biking", Score: 6},
		},
	},
	{
		Name:        "Dumbbell Row",
		Description: "Single-arm horizontal pull — allows full range and addresses imbalances",
		Type:        domain.TypeStrength,
		Equipment:   "dumbbell",
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "biceps", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 8},
			{SportSlug: "kayaking", Score: 9},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "skiing", Score: 6},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "swimming", Score: 6},
		},
	},
	{
		Name:        "Cable Row",
		Description: "Seated horizontal cable pull — constant tension through the range of motion",
		Type:        domain.TypeStrength,
		Equipment:   "cable",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "biceps", Role: domain.RoleSecondary},
			{Group: "lower_back", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 7},
			{SportSlug: "kayaking", Score: 8},
			{SportSlug: "swimming", Score: 6},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "mountain-biking", Score: 5},
		},
	},
	{
		Name:        "Face Pulls",
		Description: "Cable pull to face height — targets rear deltoid and external rotators",
		Type:        domain.TypeStrength,
		Equipment:   "cable",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "shoulders", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "swimming", Score: 8},
			{SportSlug: "kayaking", Score: 9},
			{SportSlug: "rock-climbing", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Dead Hang",
		Description: "Passive hang from a bar — builds grip strength and decompresses the spine",
		Type:        domain.TypeStrength,
		Equipment:   "pull_up_bar",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RoleSecondary},
			{Group: "shoulders", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 10},
			{SportSlug: "kayaking", Score: 6},
			{SportSlug: "general-fitness", Score: 6},
		},
	},
	{
		Name:        "Band Pull-Aparts",
		Description: "Resistance band shoulder exercise for upper back and rear delt health",
		Type:        domain.TypeStrength,
		Equipment:   "resistance_band",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "shoulders", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "swimming", Score: 8},
			{SportSlug: "kayaking", Score: 8},
			{SportSlug: "rock-climbing", Score: 7},
			{SportSlug: "skiing", Score: 5},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Plank",
		Description: "Isometric full-body core hold — foundational anti-extension exercise",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
			{Group: "shoulders", Role: domain.RoleSecondary},
			{Group: "glutes", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 9},
			{SportSlug: "kayaking", Score: 8},
			{SportSlug: "rock-climbing", Score: 8},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "general-fitness", Score: 9},
			{SportSlug: "swimming", Score: 7},
		},
	},
	{
		Name:        "Side Plank",
		Description: "Lateral isometric hold — targets obliques and lateral stability",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
			{Group: "adductors", Role: domain.RoleSecondary},
			{Group: "abductors", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 9},
			{SportSlug: "snowboarding", Score: 9},
			{SportSlug: "kayaking", Score: 8},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "rock-climbing", Score: 7},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
		},
	},
	{
		Name:        "Dead Bug",
		Description: "Supine core exercise teaching anti-extension with limb movement",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
			{Group: "hip_flexors", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "rock-climbing", Score: 7},
		},
	},
	{
		Name:        "Bird Dog",
		Description: "Quadruped core stability with opposite arm-leg extension",
		Type:        domain.TypeBalance,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
			{Group: "lower_back", Role: domain.RoleSecondary},
			{Group: "glutes", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "general-fitness", Score: 7},
			{SportSlug: "hiking", Score: 6},
		},
	},
	{
		Name:        "Hollow Hold",
		Description: "Supine hollow body position — builds core compression strength",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
			{Group: "hip_flexors", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 9},
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "kayaking", Score: 7},
			{SportSlug: "swimming", Score: 8},
		},
	},
	{
		Name:        "Pallof Press",
		Description: "Anti-rotation press with resistance band — builds rotational core stability",
		Type:        domain.TypeStrength,
		Equipment:   "resistance_band",
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 9},
			{SportSlug: "snowboarding", Score: 9},
			{SportSlug: "kayaking", Score: 9},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "rock-climbing", Score: 7},
		},
	},
	{
		Name:        "Russian Twists",
		Description: "Rotational core exercise — builds oblique strength and rotational power",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "kayaking", Score: 10},
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "general-fitness", Score: 7},
			{SportSlug: "rock-climbing", Score: 6},
		},
	},
	{
		Name:        "Hanging Knee Raises",
		Description: "Hang from a bar and raise knees to chest — hip flexors and core",
		Type:        domain.TypeStrength,
		Equipment:   "pull_up_bar",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
			{Group: "hip_flexors", Role: domain.RolePrimary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "rock-climbing", Score: 9},
			{SportSlug: "general-fitness", Score: 8},
			{SportSlug: "skiing", Score: 6},
			{SportSlug: "snowboarding", Score: 6},
			{SportSlug: "kayaking", Score: 6},
		},
	},
	{
		Name:        "Copenhagen Plank",
		Description: "Side plank with top leg elevated — aggressive adductor and lateral core work",
		Type:        domain.TypeStrength,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "adductors", Role: domain.RolePrimary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 10},
			{SportSlug: "snowboarding", Score: 10},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Single-Leg Balance",
		Description: "Stand on one leg — builds proprioception and ankle stability",
		Type:        domain.TypeBalance,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "calves", Role: domain.RoleSecondary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "general-fitness", Score: 6},
			{SportSlug: "rock-climbing", Score: 7},
		},
	},
	{
		Name:        "Lateral Band Walks",
		Description: "Side steps with resistance band — activates glute med and hip abductors",
		Type:        domain.TypeStrength,
		Equipment:   "resistance_band",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "abductors", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 10},
			{SportSlug: "snowboarding", Score: 10},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Clamshells",
		Description: "Side-lying hip abduction — targets glute medius to prevent knee valgus",
		Type:        domain.TypeStrength,
		Equipment:   "resistance_band",
		Muscles: []domain.ExerciseMuscle{
			{Group: "abductors", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 9},
			{SportSlug: "snowboarding", Score: 9},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "mountain-biking", Score: 6},
			{SportSlug: "general-fitness", Score: 6},
		},
	},
	{
		Name:        "Hip Flexor Stretch",
		Description: "Kneeling lunge stretch targeting the hip flexors",
		Type:        domain.TypeFlexibility,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "hip_flexors", Role: domain.RolePrimary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 9},
			{SportSlug: "road-cycling", Score: 9},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
		},
	},
	{
		Name:        "Pigeon Pose",
		Description: "Deep hip external rotation stretch — releases tight hip capsule",
		Type:        domain.TypeFlexibility,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "hip_flexors", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "road-cycling", Score: 8},
			{SportSlug: "trail-running", Score: 8},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Thoracic Rotation",
		Description: "Open book or quadruped rotation — restores thoracic spine mobility",
		Type:        domain.TypeFlexibility,
		Equipment:   "bodyweight",
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "kayaking", Score: 8},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "general-fitness", Score: 7},
			{SportSlug: "rock-climbing", Score: 7},
		},
	},
	{
		Name:        "Burpees",
		Description: "Full-body conditioning movement — builds aerobic capacity and power endurance",
		Type:        domain.TypeCardio,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
			{Group: "chest", Role: domain.RoleSecondary},
			{Group: "quads", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 7},
			{SportSlug: "snowboarding", Score: 7},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "general-fitness", Score: 9},
			{SportSlug: "hiking", Score: 6},
		},
	},
	{
		Name:        "Mountain Climbers",
		Description: "Running in plank position — cardio and core combined",
		Type:        domain.TypeCardio,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "core", Role: domain.RolePrimary},
			{Group: "hip_flexors", Role: domain.RolePrimary},
			{Group: "shoulders", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "skiing", Score: 6},
			{SportSlug: "rock-climbing", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
		},
	},
	{
		Name:        "Sled Push",
		Description: "Heavy sled push — builds pure leg drive and conditioning under load",
		Type:        domain.TypeCardio,
		Equipment:   "bodyweight",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
			{Group: "glutes", Role: domain.RolePrimary},
			{Group: "core", Role: domain.RoleSecondary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "general-fitness", Score: 8},
		},
	},
	{
		Name:        "Foam Roll Quads",
		Description: "Self-myofascial release for the quadriceps",
		Type:        domain.TypeFlexibility,
		Equipment:   "foam_roller",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "quads", Role: domain.RolePrimary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "skiing", Score: 8},
			{SportSlug: "snowboarding", Score: 8},
			{SportSlug: "mountain-biking", Score: 7},
			{SportSlug: "trail-running", Score: 7},
			{SportSlug: "hiking", Score: 7},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
	{
		Name:        "Foam Roll Thoracic Spine",
		Description: "Mobilize the upper back over a foam roller",
		Type:        domain.TypeFlexibility,
		Equipment:   "foam_roller",
		IsBilateral: true,
		Muscles: []domain.ExerciseMuscle{
			{Group: "upper_back", Role: domain.RolePrimary},
		},
		Sports: []domain.SportRelevance{
			{SportSlug: "kayaking", Score: 8},
			{SportSlug: "mountain-biking", Score: 8},
			{SportSlug: "rock-climbing", Score: 7},
			{SportSlug: "skiing", Score: 6},
			{SportSlug: "general-fitness", Score: 7},
		},
	},
}
