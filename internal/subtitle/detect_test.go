package subtitle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func entryAt(idx int, text string) Entry {
	start := time.Duration(idx) * time.Second
	return Entry{
		Index:   idx,
		Start:   start,
		End:     start + time.Second,
		Content: []string{text},
	}
}

func TestDetectLanguageEnglish(t *testing.T) {
	entries := []Entry{
		entryAt(1, "This is clearly an English sentence about the weather."),
		entryAt(2, "Another line written in plain English for good measure."),
		entryAt(3, "The quick brown fox jumps over the lazy dog."),
	}

	assert.Equal(t, language.English, DetectLanguage(entries))
}

func TestDetectLanguageMajorityWins(t *testing.T) {
	entries := []Entry{
		entryAt(1, "Hyvää huomenta, mitä sinulle kuuluu tänään?"),
		entryAt(2, "Minä menen kauppaan ostamaan leipää ja maitoa."),
		entryAt(3, "Sataa vettä koko päivän, ota sateenvarjo mukaan."),
		entryAt(4, "One stray English line does not change the outcome."),
	}

	assert.Equal(t, language.Finnish, DetectLanguage(entries))
}

func TestDetectLanguageEmpty(t *testing.T) {
	assert.Equal(t, language.Und, DetectLanguage(nil))
}
