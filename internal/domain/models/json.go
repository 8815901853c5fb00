package models

// JSONMap is a free-form JSON object, stored as JSONB in postgres
type JSONMap map[string]interface{}

// Clone returns a shallow copy; nil stays nil.
func (m JSONMap) Clone() JSONMap {
	if m == nil {
		return nil
	}
	out := make(JSONMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// String returns the value for key when it is a string.
func (m JSONMap) String(key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}
