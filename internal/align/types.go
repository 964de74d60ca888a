package align

// Word is a single timed token of a transcript segment.
type Word struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

// Segment is a contiguous span of transcribed speech, carrying its own
// timing and the timed words it was grouped from.
type Segment struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
	Words      []Word  `json:"words"`
}

// Syllable is a sub-word display unit.
type Syllable struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// AlignedWord is a word of an aligned segment. Its syllables contiguously
// partition [Start, End]. Translation is tolerated for downstream
// decorators; the engine never fills it.
type AlignedWord struct {
	Text        string     `json:"text"`
	Start       float64    `json:"start"`
	End         float64    `json:"end"`
	Confidence  float64    `json:"confidence"`
	Syllables   []Syllable `json:"syllables"`
	Translation string     `json:"translation,omitempty"`
}

// AlignedSegment is one line of the final synchronized output. Its words
// contiguously partition [Start, End]: the first word starts at Start, each
// word ends where the next begins, and the last word ends at End.
type AlignedSegment struct {
	ID         string        `json:"id"`
	Text       string        `json:"text"`
	Start      float64       `json:"start"`
	End        float64       `json:"end"`
	Confidence float64       `json:"confidence"`
	Quality    float64       `json:"alignment_quality"`
	Words      []AlignedWord `json:"words"`
}

// Correspondence is one kept cell of an alignment path: transcript segment
// SegmentIndex matched reference line LineIndex with the given similarity.
type Correspondence struct {
	SegmentIndex int     `json:"segment_index"`
	LineIndex    int     `json:"reference_index"`
	Similarity   float64 `json:"similarity"`
}

// Metadata is the descriptive envelope around an alignment result.
type Metadata struct {
	Title     string   `json:"title"`
	Artists   []string `json:"artists,omitempty"`
	Language  string   `json:"language,omitempty"`
	Duration  float64  `json:"duration"`
	Method    string   `json:"alignment_method"`
	Quality   float64  `json:"alignment_quality"`
	TotalCost float64  `json:"total_cost,omitempty"`
	RunID     string   `json:"run_id,omitempty"`
}

// Result is a fully timed alignment: metadata plus the ordered aligned
// segments. Raw keeps the first few path correspondences for debugging.
type Result struct {
	Metadata Metadata         `json:"metadata"`
	Segments []AlignedSegment `json:"segments"`
	Raw      []Correspondence `json:"raw_alignments,omitempty"`
}
