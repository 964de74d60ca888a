// Package transcript loads word-timestamped speech transcription JSON and
// groups its word stream into alignable segments.
package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Word token types found in transcription service output.
const (
	TypeWord       = "word"
	TypeSpacing    = "spacing"
	TypeAudioEvent = "audio_event"
)

// Word is a single token of the transcript. Confidence is optional; services
// that do not score words leave it zero.
type Word struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Response is the top-level transcription JSON structure.
type Response struct {
	LanguageCode        string  `json:"language_code"`
	LanguageProbability float64 `json:"language_probability"`
	Text                string  `json:"text"`
	Words               []Word  `json:"words"`
}

// Load decodes a transcription response from r.
func Load(r io.Reader) (*Response, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return &resp, nil
}

// LoadFile reads and decodes the transcription JSON at path.
func LoadFile(path string) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	resp, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resp, nil
}
