package template

// ProgramFile is the top-level YAML document: one or more programs sharing
// optional defaults.
type ProgramFile struct {
	Defaults *DefaultsConfig `yaml:"defaults,omitempty"`
	Programs []ProgramSchema `yaml:"programs"`
}

// DefaultsConfig fills exercise fields the program leaves unset.
type DefaultsConfig struct {
	RampUpSets  *int   `yaml:"ramp_up_sets,omitempty"`
	TopSet      *bool  `yaml:"top_set,omitempty"`
	BackOffSets *int   `yaml:"back_off_sets,omitempty"`
	RestSeconds *int   `yaml:"rest_seconds,omitempty"`
	Reps        string `yaml:"reps,omitempty"`
	Effort      *int   `yaml:"effort,omitempty"`
}

type ProgramSchema struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Defaults  *DefaultsConfig  `yaml:"defaults,omitempty"`
	Exercises []ExerciseConfig `yaml:"exercises"`
}

type ExerciseConfig struct {
	ID          string       `yaml:"id"`
	Library     string       `yaml:"library,omitempty"`
	Name        string       `yaml:"name"`
	RampUpSets  *int         `yaml:"ramp_up_sets,omitempty"`
	TopSet      *bool        `yaml:"top_set,omitempty"`
	BackOffSets *int         `yaml:"back_off_sets,omitempty"`
	Reps        string       `yaml:"reps,omitempty"`
	Effort      *int         `yaml:"effort,omitempty"`
	Notes       *NotesConfig `yaml:"notes,omitempty"`
}

type NotesConfig struct {
	Why         string `yaml:"why,omitempty"`
	Scheme      string `yaml:"scheme,omitempty"`
	Cue         string `yaml:"cue,omitempty"`
	RestSeconds *int   `yaml:"rest_seconds,omitempty"`
	Tempo       string `yaml:"tempo,omitempty"`
}

// LibraryFile lists exercises grouped by muscle.
type LibraryFile struct {
	Groups []LibraryGroup `yaml:"groups"`
}

type LibraryGroup struct {
	Muscle    string         `yaml:"muscle"`
	Exercises []LibraryEntry `yaml:"exercises"`
}

type LibraryEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}
