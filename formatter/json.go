package formatter

import (
	"encoding/json"

	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

// GenerateJSON renders results as an indented JSON array. An empty result
// set is rendered as [].
func GenerateJSON(results []tt.Result) ([]byte, error) {
	if results == nil {
		results = []tt.Result{}
	}
	return json.MarshalIndent(results, "", "  ")
}
