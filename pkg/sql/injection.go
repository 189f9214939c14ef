package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult describes an injection pattern detected in an
// extracted parameter value.
type InjectionCheckResult struct {
	IsSQLi      bool
	Fingerprint string
	ParamName   string
	ParamValue  any
}

// CheckParameterForInjection uses libinjection to detect SQL injection
// patterns in a value extracted from query text. Only string values are
// checked; numbers and other types return nil. Returns nil when no
// injection is detected.
func CheckParameterForInjection(paramName string, value any) *InjectionCheckResult {
	strValue, ok := value.(string)
	if !ok {
		return nil
	}

	isSQLi, fingerprint := libinjection.IsSQLi(strValue)
	if isSQLi {
		return &InjectionCheckResult{
			IsSQLi:      true,
			Fingerprint: string(fingerprint),
			ParamName:   paramName,
			ParamValue:  value,
		}
	}

	return nil
}
