package config

import (
	"fmt"
	"path/filepath"

	"github.com/decker502/snake/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultResourceConfigPath 内置资源配置路径
const DefaultResourceConfigPath = "assets/config/resources.yaml"

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
//
// Example from resources.yaml:
//
//	init:
//	  images:
//	    - id: IMAGE_FOOD
//	      path: images/apple.png
type ResourceGroup struct {
	Images []ResourceEntry `yaml:"images"` // List of image resources in this group
	Sounds []ResourceEntry `yaml:"sounds"` // List of sound resources in this group
}

// ResourceEntry is a single resource definition: a unique ID and a path
// relative to base_path. Images without an extension default to .png,
// sounds to .wav.
type ResourceEntry struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// LoadResourceConfig reads and parses the resource configuration file.
// Paths starting with "assets/" are read from the embedded filesystem,
// anything else from disk.
func LoadResourceConfig(path string) (*ResourceConfig, error) {
	data, err := embedded.ReadResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource config %s: %w", path, err)
	}

	return ParseResourceConfig(data)
}

// ParseResourceConfig parses a YAML resource configuration and rejects
// duplicate or empty IDs.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]string)
	for groupName, group := range cfg.Groups {
		for _, entry := range append(append([]ResourceEntry{}, group.Images...), group.Sounds...) {
			if entry.ID == "" || entry.Path == "" {
				return nil, fmt.Errorf("group %s: resource with empty id or path", groupName)
			}
			if other, dup := seen[entry.ID]; dup {
				return nil, fmt.Errorf("duplicate resource ID %s in groups %s and %s", entry.ID, other, groupName)
			}
			seen[entry.ID] = groupName
		}
	}

	return &cfg, nil
}

// BuildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_FOOD -> assets/images/apple.png
//	SOUND_EAT  -> assets/sounds/eat.wav
func (c *ResourceConfig) BuildResourceMap() map[string]string {
	resourceMap := make(map[string]string)

	for _, group := range c.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(c.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(c.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav"
			}
			resourceMap[sound.ID] = fullPath
		}
	}

	return resourceMap
}

// buildFullPath combines the base path with a resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
