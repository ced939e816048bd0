// Package cluster holds the static process topology: one coordinator and
// one worker per borough shard. The config is read once at startup and the
// derived routing table is immutable afterwards.
package cluster

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/shahchayan9/gRPC-Communication/store"
)

// Process describes one member of the cluster.
type Process struct {
	ID      string `mapstructure:"id" yaml:"id"`
	Address string `mapstructure:"address" yaml:"address"`
	Borough string `mapstructure:"borough" yaml:"borough,omitempty"`
}

type Config struct {
	Coordinator Process   `mapstructure:"coordinator" yaml:"coordinator"`
	Workers     []Process `mapstructure:"workers" yaml:"workers"`
}

// LoadConfig reads the YAML cluster config from path.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return config, errors.Wrap(err, "failed to read cluster config")
	}
	if err := v.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "failed to parse cluster config")
	}
	return config, config.Validate()
}

// Validate checks that every borough shard is owned by exactly one worker
// and that process ids are unique.
func (c Config) Validate() error {
	seenID := map[string]bool{c.Coordinator.ID: true}
	seenBorough := map[store.Borough]string{}

	if c.Coordinator.ID == "" {
		return errors.New("coordinator id must be set")
	}

	for _, w := range c.Workers {
		if w.ID == "" || w.Address == "" {
			return errors.Errorf("worker %+v must have id and address", w)
		}
		if seenID[w.ID] {
			return errors.Errorf("duplicate process id %q", w.ID)
		}
		seenID[w.ID] = true

		borough, ok := store.ParseBorough(w.Borough)
		if !ok {
			return errors.Errorf("worker %s: unknown borough %q", w.ID, w.Borough)
		}
		if owner, dup := seenBorough[borough]; dup {
			return errors.Errorf("borough %s owned by both %s and %s", borough, owner, w.ID)
		}
		seenBorough[borough] = w.ID
	}

	for _, borough := range store.Boroughs {
		if _, ok := seenBorough[borough]; !ok {
			return errors.Errorf("no worker owns borough %s", borough)
		}
	}

	return nil
}

// Routes returns the borough to worker routing table.
func (c Config) Routes() map[store.Borough]Process {
	routes := make(map[store.Borough]Process, len(c.Workers))
	for _, w := range c.Workers {
		borough, _ := store.ParseBorough(w.Borough)
		routes[borough] = w
	}
	return routes
}

// SortedWorkers returns the workers in ascending process id order, the
// order every merged response follows.
func (c Config) SortedWorkers() []Process {
	workers := make([]Process, len(c.Workers))
	copy(workers, c.Workers)
	sort.Slice(workers, func(i, j int) bool {
		return workers[i].ID < workers[j].ID
	})
	return workers
}
