package ai

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFiles embed.FS

var promptTemplates = template.Must(template.ParseFS(promptFiles, "prompts/*.tmpl"))

// maxDocumentRunes bounds extracted document text sent in a single prompt.
const maxDocumentRunes = 30000

type promptData struct {
	Locale  Locale
	Text    string
	Vitals  VitalsInput
	Usage   BillUsage
	Query   string
	Plans   []DietCandidate
	Reports []ReportContext
	History []ChatTurn
	Message string
}

func renderPrompt(name string, data promptData) (string, error) {
	data.Locale = data.Locale.withDefaults()

	var buffer bytes.Buffer
	if err := promptTemplates.ExecuteTemplate(&buffer, name+".tmpl", data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", name, err)
	}
	return buffer.String(), nil
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
