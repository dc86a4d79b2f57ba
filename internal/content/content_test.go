package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/kbtool-cli/internal/content"
)

func TestGenerateTruncatesByRunes(t *testing.T) {
	prompt := strings.Repeat("写", 60)
	got := content.Generate(prompt, 0)
	assert.Equal(t, "Generated content based on prompt: "+strings.Repeat("写", 50)+"...", got)
}

func TestGenerateShortPrompt(t *testing.T) {
	assert.Equal(t, "Generated content based on prompt: hi...", content.Generate("hi", 50))
	assert.Equal(t, "Generated content based on prompt: abc...", content.Generate("abcdef", 3))
}
