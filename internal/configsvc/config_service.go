// Package configsvc watches YAML configuration files and notifies
// subscribers when a watched file is rewritten.
package configsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/ghodss/yaml"
	"go.uber.org/zap"
)

type subscriber func(event fsnotify.Event)

type Service struct {
	log *zap.Logger

	watcher     *fsnotify.Watcher
	mu          sync.Mutex
	subscribers []subscriber
	ready       chan struct{}
}

func New(log *zap.Logger) *Service {
	return &Service{
		log:   log,
		ready: make(chan struct{}),
	}
}

// Start runs the watch loop until the context is cancelled. Register must
// not be called before Ready is closed.
func (s *Service) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	s.watcher = watcher
	defer s.watcher.Close()
	close(s.ready)
	s.log.Info("Config service started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-s.watcher.Events:
			if !ok {
				return nil
			}
			s.mu.Lock()
			for _, sub := range s.subscribers {
				sub(event)
			}
			s.mu.Unlock()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("Watcher error", zap.Error(err))
		}
	}
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Register reads the configuration at path, creating it with the defaults
// when absent, and watches it for changes; fn is called with every reload
// result. The Service is a parameter rather than the receiver to allow the
// generic type.
func Register[T any](s *Service, path string, def T, fn func(config T, err error)) (T, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return def, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	config, err := readConfig(absPath, def)
	switch {
	case os.IsNotExist(err):
		if err := writeConfig(absPath, def); err != nil {
			return def, fmt.Errorf("failed to write default config: %w", err)
		}
		s.log.Info("Created default config file", zap.String("path", absPath))
		config = def
	case err != nil:
		return def, fmt.Errorf("failed to read config: %w", err)
	}

	// Watch the directory, not the file: editors replace files and the
	// watch must survive the inode swap.
	if err := s.watcher.Add(filepath.Dir(absPath)); err != nil {
		return def, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	s.mu.Lock()
	s.subscribers = append(s.subscribers, func(event fsnotify.Event) {
		if event.Name == absPath && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
			newConfig, err := readConfig(absPath, def)
			fn(newConfig, err)
		}
	})
	s.mu.Unlock()

	return config, nil
}

func readConfig[T any](path string, def T) (T, error) {
	yamlB, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return def, err
		}
		return def, fmt.Errorf("failed to read config file: %w", err)
	}
	jsonB, err := yaml.YAMLToJSON(yamlB)
	if err != nil {
		return def, fmt.Errorf("failed to convert yaml to json: %w", err)
	}
	if err := json.Unmarshal(jsonB, &def); err != nil {
		return def, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return def, nil
}

func writeConfig[T any](path string, config T) error {
	jsonB, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	yamlB, err := yaml.JSONToYAML(jsonB)
	if err != nil {
		return fmt.Errorf("failed to convert json to yaml: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, yamlB, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
