// Package catalog holds the built-in training programs and exercise library,
// embedded as YAML and decoded through the program template loader.
package catalog

import (
	"embed"
	"fmt"
	"sync"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/template"
)

//go:embed data/*.yaml
var data embed.FS

var loadPrograms = sync.OnceValues(func() ([]domain.ProgramTemplate, error) {
	raw, err := data.ReadFile("data/programs.yaml")
	if err != nil {
		return nil, err
	}
	file, err := template.ParseFile(raw)
	if err != nil {
		return nil, err
	}
	programs, err := template.Execute(file)
	if err != nil {
		return nil, fmt.Errorf("built-in programs: %w", err)
	}
	return programs, nil
})

var loadLibrary = sync.OnceValues(func() ([]domain.LibraryExercise, error) {
	raw, err := data.ReadFile("data/library.yaml")
	if err != nil {
		return nil, err
	}
	lib, err := template.ParseLibrary(raw)
	if err != nil {
		return nil, err
	}
	exercises, err := template.Library(lib)
	if err != nil {
		return nil, fmt.Errorf("built-in library: %w", err)
	}
	return exercises, nil
})

// Programs returns a copy of the built-in programs in display order.
func Programs() ([]domain.ProgramTemplate, error) {
	programs, err := loadPrograms()
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProgramTemplate, len(programs))
	for i, p := range programs {
		out[i] = p.Clone()
	}
	return out, nil
}

// Library returns a copy of the built-in exercise library.
func Library() ([]domain.LibraryExercise, error) {
	exercises, err := loadLibrary()
	if err != nil {
		return nil, err
	}
	return append([]domain.LibraryExercise(nil), exercises...), nil
}
