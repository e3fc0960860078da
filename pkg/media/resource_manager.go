package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, audio players and
// font faces, ensuring that resources are loaded only once.
//
// Resources are addressed either by path or by the IDs declared in
// assets/config/resources.yaml. Paths starting with "assets/" are read from
// the embedded filesystem (see pkg/embedded), anything else from disk.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game
// loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(44100)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig(config.DefaultResourceConfigPath); err != nil {
//	    return err
//	}
//	img, err := rm.LoadImageByID("IMAGE_FOOD")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // Cache for loaded images: path -> Image
	audioCache    map[string]*audio.Player     // Cache for loaded audio players: path -> Player
	audioContext  *audio.Context               // Global audio context for audio decoding
	fontSource    *text.GoTextFaceSource       // Lazily parsed default font
	fontFaceCache map[float64]*text.GoTextFace // Cache for default font faces: size -> face

	// YAML resource configuration
	config      *config.ResourceConfig // Parsed YAML configuration
	resourceMap map[string]string      // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback and
// may be nil only when no audio will be loaded.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// readResource reads a whole resource file into memory.
func readResource(path string) ([]byte, error) {
	return embedded.ReadResource(path)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// audioStream is the common shape of the wav, mp3 and vorbis decoders' streams.
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio reads and decodes an audio file, resampling it to the audio
// context's sample rate. Supported formats: WAV (.wav), MP3 (.mp3) and
// OGG Vorbis (.ogg).
func (rm *ResourceManager) decodeAudio(path string) (audioStream, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}

// LoadAudio loads an audio file wrapped in an infinite loop, for background music.
// The player is cached by path.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect. Unlike LoadAudio, the
// stream is NOT wrapped in an infinite loop. The player is cached by path.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadDefaultFont returns a face of the built-in Go Regular font at the given size.
// The font source is parsed once; faces are cached by size.
func (rm *ResourceManager) LoadDefaultFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face

	return face, nil
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// This must be called before using any ID-based loading methods.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	cfg, err := config.LoadResourceConfig(configPath)
	if err != nil {
		return err
	}
	rm.SetResourceConfig(cfg)
	return nil
}

// SetResourceConfig installs an already parsed resource configuration.
func (rm *ResourceManager) SetResourceConfig(cfg *config.ResourceConfig) {
	rm.config = cfg
	rm.resourceMap = cfg.BuildResourceMap()
}

// ResourcePath resolves a resource ID to its file path.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, error) {
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return filePath, nil
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, err := rm.ResourcePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, err := rm.ResourcePath(resourceID)
	if err != nil {
		return nil
	}
	return rm.GetImage(filePath)
}

// LoadSoundPlayer returns the one-shot player for a sound resource ID.
func (rm *ResourceManager) LoadSoundPlayer(resourceID string) (Player, error) {
	filePath, err := rm.ResourcePath(resourceID)
	if err != nil {
		return nil, err
	}
	player, err := rm.LoadSoundEffect(filePath)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// LoadMusicPlayer returns the looping player for a music resource ID.
func (rm *ResourceManager) LoadMusicPlayer(resourceID string) (Player, error) {
	filePath, err := rm.ResourcePath(resourceID)
	if err != nil {
		return nil, err
	}
	player, err := rm.LoadAudio(filePath)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// LoadResourceGroup loads all resources in a specified group.
//
//   - "init" - sprites and sound effects needed at startup
//   - "music" - the background loop (loaded lazily on first key press)
//
// Sounds in a group named "music" are loaded as looping players.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		var err error
		if groupName == "music" {
			_, err = rm.LoadMusicPlayer(sound.ID)
		} else {
			_, err = rm.LoadSoundPlayer(sound.ID)
		}
		if err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	return nil
}
