// Package roster хранит список сотрудников шахты и их последние известные позиции.
package roster

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/shenikar/mineguard/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed workers.yaml
var defaultRoster []byte

type rosterFile struct {
	Workers []models.Worker `yaml:"workers"`
}

// Directory неизменяемый справочник сотрудников
type Directory struct {
	workers []models.Worker
}

// New создает справочник из готового списка
func New(workers []models.Worker) *Directory {
	return &Directory{workers: slices.Clone(workers)}
}

// Default возвращает встроенный справочник из четырех сотрудников
func Default() *Directory {
	d, err := parse(defaultRoster)
	if err != nil {
		panic(fmt.Sprintf("roster: embedded roster is malformed: %v", err))
	}
	return d
}

// Load читает справочник из YAML файла; пустой путь означает встроенный справочник
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: failed to read %s: %w", path, err)
	}
	d, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster: failed to parse %s: %w", path, err)
	}
	return d, nil
}

func parse(data []byte) (*Directory, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(file.Workers))
	for i, w := range file.Workers {
		if w.ID == "" {
			return nil, fmt.Errorf("worker #%d has no id", i+1)
		}
		if _, ok := seen[w.ID]; ok {
			return nil, fmt.Errorf("duplicate worker id %q", w.ID)
		}
		seen[w.ID] = struct{}{}
	}
	return &Directory{workers: file.Workers}, nil
}

// ListWorkers возвращает копию списка, порядок совпадает с исходным
func (d *Directory) ListWorkers(_ context.Context) ([]models.Worker, error) {
	return slices.Clone(d.workers), nil
}
