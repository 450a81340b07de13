package api

import "encoding/json"

// codeOK is the backend's success sentinel inside the response envelope.
const codeOK = 200

// envelope is the outer wrapper present on every backend response.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// decodeEnvelope normalizes a raw response body to either the inner payload
// or an error.
//
// Rules, in order:
//   - a body that does not parse as an envelope is a protocol failure with
//     the generic fallback message;
//   - a non-OK code rejects with data.error, else msg, else fallback;
//   - an OK code with a non-empty "error" field inside data is still a
//     failure (some endpoints signal errors this way even under code 200).
func decodeEnvelope(body []byte, fallback string) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &Error{Message: fallback}
	}

	embedded := embeddedError(env.Data)

	if env.Code != codeOK {
		msg := embedded
		if msg == "" {
			msg = env.Msg
		}
		if msg == "" {
			msg = fallback
		}
		return nil, &Error{Code: env.Code, Message: msg}
	}

	if embedded != "" {
		return nil, &Error{Code: env.Code, Message: embedded}
	}

	return env.Data, nil
}

// embeddedError probes data for the known error-bearing shape
// {"error": "..."} and returns the message, or "" when absent.
func embeddedError(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	return probe.Error
}
