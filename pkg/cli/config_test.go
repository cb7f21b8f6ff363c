package cli

import (
	"testing"

	"github.com/m-mizutani/gt"

	rexconfig "github.com/rex-ai/rex/pkg/config"
)

func TestGeminiModel(t *testing.T) {
	testCases := []struct {
		name       string
		configured string
		want       string
	}{
		{"configured model passes through", "gemini-embedding-001", "gemini-embedding-001"},
		{"local default is not forwarded", rexconfig.LocalModel, ""},
		{"empty config falls back to the adapter default", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, geminiModel(tc.configured), tc.want)
		})
	}
}
