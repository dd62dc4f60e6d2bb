package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldSetting   = "setting"
	FieldHosts     = "hosts"
	FieldAction    = "action"
	FieldPath      = "path"
	FieldError     = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Debug("resolved", logger.Fields("path", "/foo/_bulk"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(setting string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldSetting: setting,
		FieldError:   err.Error(),
	}
}
