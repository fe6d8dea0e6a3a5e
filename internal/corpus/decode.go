package corpus

import (
	"encoding/json"
	"errors"

	"github.com/veda-tools/samhita/internal/model"
)

// ErrUnrecognizedShape marks syntactically valid JSON that is none of
// the accepted payload shapes. Callers treat it as an empty collection
// with a logged warning, not a failure.
var ErrUnrecognizedShape = errors.New("unrecognized payload shape")

// decodeVerses accepts the three payload shapes the corpus files come
// in: a bare verse array, {"verses": [...]}, or {"data": [...]}.
func decodeVerses(data []byte) ([]model.Verse, error) {
	var verses []model.Verse
	if err := json.Unmarshal(data, &verses); err == nil {
		return verses, nil
	}

	var wrapper struct {
		Verses []model.Verse `json:"verses"`
		Data   []model.Verse `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil {
		if wrapper.Verses != nil {
			return wrapper.Verses, nil
		}
		if wrapper.Data != nil {
			return wrapper.Data, nil
		}
	}

	if json.Valid(data) {
		return nil, ErrUnrecognizedShape
	}
	return nil, errors.New("malformed JSON")
}
