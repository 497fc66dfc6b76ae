package site

import (
	"fmt"
	"log"

	"github.com/gonewx/sitemotion/pkg/ui"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 用户偏好
type Settings struct {
	Theme  string `yaml:"theme"`  // light / dark / system
	Locale string `yaml:"locale"` // 空表示按系统语言协商
}

// DefaultSettings 返回默认偏好
func DefaultSettings() *Settings {
	return &Settings{
		Theme:  string(ui.ThemeSystem),
		Locale: "",
	}
}

// SettingsManager 负责偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	settings     *Settings
}

const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// NewSettingsManager 创建偏好管理器
// 加载失败时记录警告并使用默认值
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载偏好
// 存储不可用或没有存档时使用默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 存档中的无效值回退到默认值
	if _, err := ui.ParseTheme(loaded.Theme); err != nil {
		log.Printf("[SettingsManager] Warning: invalid theme %q, using %s", loaded.Theme, ui.ThemeSystem)
		loaded.Theme = string(ui.ThemeSystem)
	}
	if loaded.Locale != "" {
		if _, err := ui.ParseLocale(loaded.Locale); err != nil {
			log.Printf("[SettingsManager] Warning: invalid locale %q, ignored", loaded.Locale)
			loaded.Locale = ""
		}
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded: theme=%s locale=%s", loaded.Theme, loaded.Locale)
	return nil
}

// Save 保存偏好到 gdata，降级模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// Settings 返回当前偏好
func (sm *SettingsManager) Settings() Settings {
	return *sm.settings
}

// Theme 返回主题偏好
func (sm *SettingsManager) Theme() ui.Theme {
	theme, err := ui.ParseTheme(sm.settings.Theme)
	if err != nil {
		return ui.ThemeSystem
	}
	return theme
}

// SetTheme 修改主题（需调用 Save 持久化）
func (sm *SettingsManager) SetTheme(theme ui.Theme) {
	sm.settings.Theme = string(theme)
}

// Locale 返回保存的语言，没有时第二个返回值为 false
func (sm *SettingsManager) Locale() (ui.Locale, bool) {
	if sm.settings.Locale == "" {
		return "", false
	}
	locale, err := ui.ParseLocale(sm.settings.Locale)
	if err != nil {
		return "", false
	}
	return locale, true
}

// SetLocale 修改语言（需调用 Save 持久化）
func (sm *SettingsManager) SetLocale(locale ui.Locale) {
	sm.settings.Locale = string(locale)
}
