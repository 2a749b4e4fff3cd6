package cli

import (
	"encoding/json"
	"fmt"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// printJSON writes v as indented JSON. A non-empty filter is a
// JMESPath expression applied to the generic form of v, so typed
// structs and maps filter the same way.
func (a *App) printJSON(v any, filter string) error {
	var data any = v

	if filter != "" {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("decode output: %w", err)
		}
		data, err = jmespath.Search(filter, generic)
		if err != nil {
			return fmt.Errorf("apply filter %q: %w", filter, err)
		}
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
