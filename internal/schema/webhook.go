package schema

import (
	"bytes"
	"encoding/json"
)

// WebhookRequest covers the payload conventions a voice agent may use to
// describe a function call:
//
//	{"function_call": {"name": "...", "arguments": {...}}}
//	{"name": "...", "args": {...}, "call": {...}}
//	{"start": "...", "name": "...", "phone": "..."}
type WebhookRequest struct {
	FunctionCall *FunctionCall   `json:"function_call,omitempty"`
	Name         string          `json:"-"`
	Args         json.RawMessage `json:"args,omitempty"`
	Call         json.RawMessage `json:"call,omitempty"`

	raw json.RawMessage
}

type FunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (w *WebhookRequest) UnmarshalJSON(data []byte) error {
	type alias WebhookRequest
	var decoded struct {
		alias
		Name json.RawMessage `json:"name"`
	}

	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*w = WebhookRequest(decoded.alias)
	w.raw = append(json.RawMessage(nil), data...)

	// a string name only means a function name when it is not a flat payload
	var name string
	if len(decoded.Name) > 0 && json.Unmarshal(decoded.Name, &name) == nil {
		w.Name = name
	}

	return nil
}

// Resolve returns the function call the payload describes. Flat payloads
// come back with an empty name and the whole body as arguments.
func (w *WebhookRequest) Resolve() FunctionCall {
	if w.FunctionCall != nil {
		return *w.FunctionCall
	}

	if len(w.Args) > 0 {
		return FunctionCall{
			Name:      w.Name,
			Arguments: w.Args,
		}
	}

	return FunctionCall{
		Arguments: w.raw,
	}
}

// BindArguments decodes the call arguments into destination. Arguments sent
// as a JSON encoded string are decoded twice.
func (f FunctionCall) BindArguments(destination any) error {
	arguments := bytes.TrimSpace(f.Arguments)
	if len(arguments) == 0 || bytes.Equal(arguments, []byte("null")) {
		arguments = []byte("{}")
	}

	if arguments[0] == '"' {
		var encoded string
		if err := json.Unmarshal(arguments, &encoded); err != nil {
			return err
		}

		arguments = []byte(encoded)
	}

	return json.Unmarshal(arguments, destination)
}
