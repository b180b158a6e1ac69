// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"rtd-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LoadLevelDefinition reads a level layout from a JSON file and validates it.
// Missing top-level fields keep the values of DefaultLevel. The path and the
// turret slots always come from the file alone.
func LoadLevelDefinition(path string) (*LevelDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level definition file: %w", err)
	}

	def := DefaultLevel()
	// иначе json пишет элементы поверх массивов уровня по умолчанию
	def.Path = nil
	def.Turrets = nil
	if err := json.Unmarshal(file, def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"level_name": def.Name,
		"waypoints":  len(def.Path),
		"turrets":    len(def.Turrets),
	}).Info("Loaded level definition")
	return def, nil
}

// ResolveLevel returns the built-in level for an empty path, the file's level otherwise.
func ResolveLevel(path string) (*LevelDefinition, error) {
	if path == "" {
		return DefaultLevel(), nil
	}
	return LoadLevelDefinition(path)
}
