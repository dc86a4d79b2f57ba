// Package content produces placeholder text from a prompt.
package content

import "github.com/KaramelBytes/kbtool-cli/internal/utils"

// DefaultPreviewRunes is how much of the prompt is echoed back.
const DefaultPreviewRunes = 50

// Generate returns placeholder content for prompt, echoing at most
// previewRunes leading characters of it.
func Generate(prompt string, previewRunes int) string {
	if previewRunes <= 0 {
		previewRunes = DefaultPreviewRunes
	}
	head, _ := utils.TruncateRunes(prompt, previewRunes)
	return "Generated content based on prompt: " + head + "..."
}
