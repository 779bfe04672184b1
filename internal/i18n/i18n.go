package i18n

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

const LangEN = "en"

//go:embed languages.json
var languagesCatalog []byte

// Manager resolves free-form language preferences ("ur", "ur-PK", "urdu")
// to the display names the AI prompts are written with.
type Manager struct {
	defaultLanguage string
	byCode          map[string]string
	byName          map[string]string
	supported       []string
}

func NewManager(defaultLanguage string) (*Manager, error) {
	codes := map[string]string{}
	if err := json.Unmarshal(languagesCatalog, &codes); err != nil {
		return nil, fmt.Errorf("parse language catalog: %w", err)
	}
	if _, ok := codes[LangEN]; !ok {
		return nil, fmt.Errorf("required language %q missing", LangEN)
	}

	manager := &Manager{
		byCode: make(map[string]string, len(codes)),
		byName: make(map[string]string, len(codes)),
	}
	for code, name := range codes {
		manager.byCode[strings.ToLower(code)] = name
		manager.byName[strings.ToLower(name)] = name
		manager.supported = append(manager.supported, name)
	}
	sort.Strings(manager.supported)

	manager.defaultLanguage = codes[LangEN]
	if resolved, ok := manager.NormalizeLanguage(defaultLanguage); ok {
		manager.defaultLanguage = resolved
	}
	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	result := make([]string, len(manager.supported))
	copy(result, manager.supported)
	return result
}

// NormalizeLanguage reports false for languages outside the catalog.
func (manager *Manager) NormalizeLanguage(raw string) (string, bool) {
	candidate := strings.ToLower(strings.TrimSpace(raw))
	if candidate == "" {
		return "", false
	}
	if name, ok := manager.byName[candidate]; ok {
		return name, true
	}
	if name, ok := manager.byCode[normalizeLanguageTag(candidate)]; ok {
		return name, true
	}
	return "", false
}

// Resolve falls back to the default language instead of failing.
func (manager *Manager) Resolve(raw string) string {
	if name, ok := manager.NormalizeLanguage(raw); ok {
		return name
	}
	return manager.defaultLanguage
}

func (manager *Manager) DetectFromAcceptLanguage(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		token := strings.TrimSpace(strings.Split(part, ";")[0])
		if token == "" || token == "*" {
			continue
		}
		if name, ok := manager.NormalizeLanguage(token); ok {
			return name
		}
	}
	return manager.defaultLanguage
}

func normalizeLanguageTag(raw string) string {
	language := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	if separator := strings.Index(language, "-"); separator >= 0 {
		language = language[:separator]
	}
	return language
}
