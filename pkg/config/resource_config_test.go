package config

import (
	"strings"
	"testing"
)

const testResourceYAML = `
version: "1.0"
base_path: assets
groups:
  init:
    images:
      - id: IMAGE_FOOD
        path: images/apple.png
      - id: IMAGE_SNAKE_HEAD
        path: images/snake
    sounds:
      - id: SOUND_EAT
        path: sounds/eat
  music:
    sounds:
      - id: SOUND_MUSIC
        path: /sounds/music.wav
`

func TestParseResourceConfig(t *testing.T) {
	cfg, err := ParseResourceConfig([]byte(testResourceYAML))
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}

	if cfg.BasePath != "assets" {
		t.Errorf("BasePath = %q, want assets", cfg.BasePath)
	}
	if len(cfg.Groups) != 2 {
		t.Errorf("expected 2 groups, got %d", len(cfg.Groups))
	}
	if len(cfg.Groups["init"].Images) != 2 {
		t.Errorf("expected 2 images in init group, got %d", len(cfg.Groups["init"].Images))
	}
}

func TestBuildResourceMap(t *testing.T) {
	cfg, err := ParseResourceConfig([]byte(testResourceYAML))
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}

	resourceMap := cfg.BuildResourceMap()

	tests := []struct {
		id   string
		want string
	}{
		{"IMAGE_FOOD", "assets/images/apple.png"},
		{"IMAGE_SNAKE_HEAD", "assets/images/snake.png"},
		{"SOUND_EAT", "assets/sounds/eat.wav"},
		{"SOUND_MUSIC", "assets/sounds/music.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := resourceMap[tt.id]; got != tt.want {
				t.Errorf("resourceMap[%s] = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestParseResourceConfigRejectsDuplicates(t *testing.T) {
	data := `
groups:
  a:
    images:
      - id: IMAGE_FOOD
        path: images/apple.png
  b:
    sounds:
      - id: IMAGE_FOOD
        path: sounds/eat.wav
`
	_, err := ParseResourceConfig([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate ID error, got %v", err)
	}
}

func TestParseResourceConfigRejectsEmptyPath(t *testing.T) {
	data := `
groups:
  init:
    images:
      - id: IMAGE_FOOD
`
	if _, err := ParseResourceConfig([]byte(data)); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestBuildFullPath(t *testing.T) {
	if got := buildFullPath("", "images/a.png"); got != "images/a.png" {
		t.Errorf("got %q", got)
	}
	if got := buildFullPath("assets", "images/a.png"); got != "assets/images/a.png" {
		t.Errorf("got %q", got)
	}
}
