package tariffs

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FeatureList is an ordered list of included-feature strings stored as jsonb.
type FeatureList []string

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for FeatureList: %T", value)
	}

	return json.Unmarshal(data, (*[]string)(f))
}
