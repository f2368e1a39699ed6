package defra

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// validTypename guards the typename interpolated into the mutation text.
var validTypename = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CreateMutation serializes a field map into a DefraDB create mutation:
//
//	mutation { create_Project(data: "{\"name\": ...}") { _key } }
//
// The payload is embedded as a JSON-escaped string, which is the form
// the v0 API accepts. encoding/json sorts map keys, so the output is
// deterministic for a given field map.
func CreateMutation(typename string, fields map[string]any) (string, error) {
	if !validTypename.MatchString(typename) {
		return "", fmt.Errorf("invalid typename: %q", typename)
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s fields: %w", typename, err)
	}

	return fmt.Sprintf("mutation { create_%s(data: %s) { _key } }", typename, strconv.Quote(string(data))), nil
}
