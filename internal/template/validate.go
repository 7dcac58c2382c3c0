package template

import "fmt"

// ValidateFile checks a ProgramFile for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateFile(file *ProgramFile) []error {
	var errs []error

	if len(file.Programs) == 0 {
		errs = append(errs, fmt.Errorf("at least one program is required"))
	}
	errs = append(errs, validateDefaults("defaults", file.Defaults)...)

	programIDs := map[string]bool{}
	for i := range file.Programs {
		p := &file.Programs[i]
		prefix := fmt.Sprintf("program[%d]", i)
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if p.ID != "" && programIDs[p.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, p.ID))
		}
		programIDs[p.ID] = true
		errs = append(errs, validateDefaults(prefix+".defaults", p.Defaults)...)
		errs = append(errs, validateExercises(prefix, p.Exercises)...)
	}
	return errs
}

func validateExercises(prefix string, exercises []ExerciseConfig) []error {
	var errs []error
	if len(exercises) == 0 {
		errs = append(errs, fmt.Errorf("%s: at least one exercise is required", prefix))
	}
	ids := map[string]bool{}
	for j, ex := range exercises {
		exPrefix := fmt.Sprintf("%s.exercise[%d]", prefix, j)
		if ex.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", exPrefix))
		}
		if ex.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", exPrefix))
		}
		if ex.ID != "" && ids[ex.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", exPrefix, ex.ID))
		}
		ids[ex.ID] = true
		if negative(ex.RampUpSets) || negative(ex.BackOffSets) {
			errs = append(errs, fmt.Errorf("%s: set counts must be >= 0", exPrefix))
		}
		if ex.Notes != nil && negative(ex.Notes.RestSeconds) {
			errs = append(errs, fmt.Errorf("%s: rest_seconds must be >= 0", exPrefix))
		}
	}
	return errs
}

func validateDefaults(prefix string, d *DefaultsConfig) []error {
	if d == nil {
		return nil
	}
	var errs []error
	if negative(d.RampUpSets) || negative(d.BackOffSets) {
		errs = append(errs, fmt.Errorf("%s: set counts must be >= 0", prefix))
	}
	if negative(d.RestSeconds) {
		errs = append(errs, fmt.Errorf("%s: rest_seconds must be >= 0", prefix))
	}
	return errs
}

// ValidateLibrary checks a LibraryFile for missing fields and duplicate ids.
func ValidateLibrary(lib *LibraryFile) []error {
	var errs []error
	ids := map[string]bool{}
	for i, g := range lib.Groups {
		if g.Muscle == "" {
			errs = append(errs, fmt.Errorf("group[%d]: muscle is required", i))
		}
		for j, e := range g.Exercises {
			if e.ID == "" || e.Name == "" {
				errs = append(errs, fmt.Errorf("group[%d].exercise[%d]: id and name are required", i, j))
				continue
			}
			if ids[e.ID] {
				errs = append(errs, fmt.Errorf("group[%d].exercise[%d]: duplicate id %q", i, j, e.ID))
			}
			ids[e.ID] = true
		}
	}
	return errs
}

func negative(p *int) bool {
	return p != nil && *p < 0
}
