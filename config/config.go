package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"elastic-carousel/log"
	"elastic-carousel/ui/carousel"
	"elastic-carousel/ui/layout"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".elastic-carousel"
)

// configDirOverride replaces the home based directory in tests.
var configDirOverride string

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// Config represents the application configuration
type Config struct {
	// ItemsToShow and ItemsToScroll apply when no breakpoint matches.
	ItemsToShow   int `json:"items_to_show"`
	ItemsToScroll int `json:"items_to_scroll"`
	// Breakpoints select the counts by container width, in cells.
	Breakpoints []layout.Breakpoint `json:"breakpoints"`

	RTL        bool `json:"rtl"`
	Pagination bool `json:"pagination"`
	ShowArrows bool `json:"show_arrows"`

	TransitionMs int    `json:"transition_ms"`
	Easing       string `json:"easing"`
	TiltEasing   string `json:"tilt_easing"`
	EnableTilt   bool   `json:"enable_tilt"`

	EnableSwipe      bool `json:"enable_swipe"`
	EnableMouseSwipe bool `json:"enable_mouse_swipe"`

	EnableAutoPlay  bool `json:"enable_autoplay"`
	AutoPlaySpeedMs int  `json:"autoplay_speed_ms"`

	FocusOnSelect bool `json:"focus_on_select"`
	// ItemPosition is one of "start", "center" or "end".
	ItemPosition string `json:"item_position"`
	// ItemPadding is [top, right, bottom, left] in cells.
	ItemPadding [4]int `json:"item_padding"`

	// MarkdownStyle is the glamour style for markdown cards.
	MarkdownStyle string `json:"markdown_style"`
	// WatchDeck reloads the open deck when the file changes.
	WatchDeck bool `json:"watch_deck"`
	// RememberPosition reopens decks at the last viewed card.
	RememberPosition bool `json:"remember_position"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cc := carousel.DefaultConfig()
	return &Config{
		ItemsToShow:      3,
		ItemsToScroll:    1,
		Breakpoints:      DefaultBreakpoints(),
		Pagination:       cc.Pagination,
		ShowArrows:       cc.ShowArrows,
		TransitionMs:     int(cc.Transition / time.Millisecond),
		Easing:           cc.Easing,
		TiltEasing:       cc.TiltEasing,
		EnableTilt:       cc.EnableTilt,
		EnableSwipe:      cc.EnableSwipe,
		EnableMouseSwipe: cc.EnableMouseSwipe,
		AutoPlaySpeedMs:  int(cc.AutoPlaySpeed / time.Millisecond),
		ItemPosition:     string(cc.ItemPosition),
		ItemPadding:      [4]int{0, 1, 0, 1},
		MarkdownStyle:    "auto",
		WatchDeck:        true,
		RememberPosition: true,
	}
}

// DefaultBreakpoints shows one card on narrow terminals and up to four on
// wide ones.
func DefaultBreakpoints() []layout.Breakpoint {
	return []layout.Breakpoint{
		{Width: 1, ItemsToShow: 1},
		{Width: 60, ItemsToShow: 2},
		{Width: 100, ItemsToShow: 3},
		{Width: 160, ItemsToShow: 4, ItemsToScroll: 2},
	}
}

// CarouselConfig converts the file configuration into carousel props.
func (c *Config) CarouselConfig() carousel.Config {
	cc := carousel.DefaultConfig()
	cc.ItemsToShow = c.ItemsToShow
	cc.ItemsToScroll = c.ItemsToScroll
	cc.Breakpoints = append([]layout.Breakpoint(nil), c.Breakpoints...)
	cc.IsRTL = c.RTL
	cc.Pagination = c.Pagination
	cc.ShowArrows = c.ShowArrows
	cc.Transition = time.Duration(c.TransitionMs) * time.Millisecond
	if c.Easing != "" {
		cc.Easing = c.Easing
	}
	if c.TiltEasing != "" {
		cc.TiltEasing = c.TiltEasing
	}
	cc.EnableTilt = c.EnableTilt
	cc.EnableSwipe = c.EnableSwipe
	cc.EnableMouseSwipe = c.EnableMouseSwipe
	cc.EnableAutoPlay = c.EnableAutoPlay
	cc.AutoPlaySpeed = time.Duration(c.AutoPlaySpeedMs) * time.Millisecond
	cc.FocusOnSelect = c.FocusOnSelect
	switch p := carousel.ItemPosition(c.ItemPosition); p {
	case carousel.PositionStart, carousel.PositionCenter, carousel.PositionEnd:
		cc.ItemPosition = p
	default:
		cc.ItemPosition = carousel.PositionCenter
	}
	cc.ItemPadding = c.ItemPadding
	cc.ClassName = "deck"
	return cc
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Fields missing from the file keep their defaults.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig writes the configuration, e.g. after the settings overlay
// changed it.
func SaveConfig(config *Config) error {
	return saveConfig(config)
}

// Reset removes the config and state files. Every file is attempted; the
// failures are joined.
func Reset() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	var errs []error
	for _, name := range []string{ConfigFileName, StateFileName, lockFileName} {
		if err := os.Remove(filepath.Join(configDir, name)); err != nil && !os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
