package auxi

import (
	"encoding/json"
	"fmt"
)

func FromJsonError(path string, jsonErr error) error {
	if err, ok := jsonErr.(*json.SyntaxError); ok {
		return fmt.Errorf("%s: %s (offset %d)", path, err, err.Offset)
	}
	return fmt.Errorf("%s: %s", path, jsonErr)
}
