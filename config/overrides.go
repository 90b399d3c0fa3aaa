package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyOverrides is returned for a tuning document with no content.
var ErrEmptyOverrides = errors.New("tuning overrides are empty")

// tuningDoc mirrors the tunable globals. Keys are the lowercased field
// names, e.g.
//
//	physics:
//	  gravity: 1100
//	ai:
//	  sightdistance: 240
type tuningDoc struct {
	Physics   *PhysicsConfig   `yaml:"physics"`
	Actor     *ActorConfig     `yaml:"actor"`
	Player    *PlayerConfig    `yaml:"player"`
	Enemy     *EnemyConfig     `yaml:"enemy"`
	AI        *AIConfig        `yaml:"ai"`
	Combat    *CombatConfig    `yaml:"combat"`
	Animation *AnimationConfig `yaml:"animation"`
	AirAttack *AirAttackConfig `yaml:"airattack"`
	Director  *DirectorConfig  `yaml:"director"`
}

// Overrides is a validated tuning document waiting to be applied.
type Overrides struct {
	data []byte
}

// ParseOverrides validates a YAML tuning document. Unknown keys are
// rejected so typos don't silently do nothing.
func ParseOverrides(data []byte) (*Overrides, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyOverrides
	}

	// Decode onto a zero document: validation runs on the watcher goroutine
	// and must not read the globals the tick thread writes.
	var scratch tuningDoc
	if err := decodeStrict(data, &scratch); err != nil {
		return nil, err
	}
	return &Overrides{data: data}, nil
}

// LoadOverrides reads and validates a YAML tuning file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	o, err := ParseOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	return o, nil
}

// Apply writes the overridden fields into the global tuning. Fields the
// document doesn't mention keep their current values. Call it from the
// goroutine that runs the simulation.
func (o *Overrides) Apply() error {
	if o == nil {
		return nil
	}
	doc := tuningDoc{
		Physics:   &Physics,
		Actor:     &Actor,
		Player:    &Player,
		Enemy:     &Enemy,
		AI:        &AI,
		Combat:    &Combat,
		Animation: &Animation,
		AirAttack: &AirAttack,
		Director:  &Director,
	}
	return decodeStrict(o.data, &doc)
}

func decodeStrict(data []byte, doc *tuningDoc) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}
	return nil
}
