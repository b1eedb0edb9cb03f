package pymodule

import (
	"encoding/json"
	"fmt"
	"reflect"

	invopopjsonschema "github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the definition document, for editor
// validation of definition files.
func Schema() ([]byte, error) {
	r := &invopopjsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	js := r.ReflectFromType(reflect.TypeOf((*Module)(nil)).Elem())
	js.Title = "Python module definition"

	out, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json schema: %w", err)
	}

	return out, nil
}
