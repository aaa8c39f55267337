package translate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/buger/jsonparser"
	"github.com/dmitrijs2005/wordbridge/internal/optional"
)

var errInvalidBody = errors.New("translation service returned a non-JSON response")

// ParseResponse interprets a translation API reply.
//
// An empty body counts as {}. A truthy top-level "errors" or "error" makes an
// UpstreamError; so does a non-2xx status whose body carries no translation.
// Otherwise data.translations[0].translatedText is returned when present.
func ParseResponse(status int, body []byte) (optional.Value[string], error) {
	none := optional.None[string]()

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return none, fmt.Errorf("%w (status %d)", errInvalidBody, status)
	}

	if truthy(body, "errors") || truthy(body, "error") {
		return none, &UpstreamError{Message: failureMessage(body)}
	}

	text, err := jsonparser.GetString(body, "data", "translations", "[0]", "translatedText")
	if err == nil {
		return optional.Some(text), nil
	}

	if status < 200 || status >= 300 {
		msg := http.StatusText(status)
		if msg == "" {
			msg = defaultFailureMessage
		}
		return none, &UpstreamError{Message: msg}
	}

	return none, nil
}

// truthy mirrors a loose "is this key set to something meaningful" check:
// null, false, 0 and "" do not count.
func truthy(body []byte, key string) bool {
	v, typ, _, err := jsonparser.Get(body, key)
	if err != nil {
		return false
	}

	switch typ {
	case jsonparser.Null, jsonparser.NotExist:
		return false
	case jsonparser.Boolean:
		b, _ := jsonparser.ParseBoolean(v)
		return b
	case jsonparser.Number:
		f, _ := jsonparser.ParseFloat(v)
		return f != 0
	case jsonparser.String:
		return len(v) > 0
	default:
		return true
	}
}

func failureMessage(body []byte) string {
	if msg, err := jsonparser.GetString(body, "message"); err == nil && msg != "" {
		return msg
	}
	if msg, err := jsonparser.GetString(body, "error", "message"); err == nil && msg != "" {
		return msg
	}
	if msg, err := jsonparser.GetString(body, "error"); err == nil && msg != "" {
		return msg
	}
	return defaultFailureMessage
}
