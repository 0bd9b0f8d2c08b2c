package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var ErrConfigNotFound = errors.New("configuration not found")

// extensions are tried in order when a preset is referenced without one.
var extensions = []string{".txt", ".yaml", ".yml"}

// PresetInfo describes a preset found in the config directory.
type PresetInfo struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Perfect  bool   `json:"perfect"`
}

// Manager resolves named presets in a directory and caches them.
type Manager struct {
	configDir string
	configs   map[string]*Config
	mu        sync.RWMutex
}

// NewManager creates a manager for configDir.
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	return &Manager{
		configDir: configDir,
		configs:   make(map[string]*Config),
	}, nil
}

// Load returns the preset called name, reading it on first use.
func (m *Manager) Load(name string) (*Config, error) {
	m.mu.RLock()
	if cfg, ok := m.configs[name]; ok {
		m.mu.RUnlock()
		return cfg, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg, ok := m.configs[name]; ok {
		return cfg, nil
	}

	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	m.configs[name] = cfg
	return cfg, nil
}

// List describes every valid preset in the directory, sorted by name.
// Invalid files are skipped.
func (m *Manager) List() ([]PresetInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var presets []PresetInfo
	for _, entry := range entries {
		if entry.IsDir() || !hasPresetExt(entry.Name()) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		cfg, err := m.Load(name)
		if err != nil {
			continue
		}

		presets = append(presets, PresetInfo{
			Name:     name,
			Filename: entry.Name(),
			Width:    cfg.Width,
			Height:   cfg.Height,
			Perfect:  cfg.Perfect,
		})
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// Refresh drops every cached preset.
func (m *Manager) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs = make(map[string]*Config)
}

func (m *Manager) resolve(name string) (string, error) {
	if hasPresetExt(name) {
		path := filepath.Join(m.configDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, name)
	}

	for _, ext := range extensions {
		path := filepath.Join(m.configDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrConfigNotFound, name)
}

func hasPresetExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
