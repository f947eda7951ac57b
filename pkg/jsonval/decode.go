package jsonval

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/kweiler/jsonheat/pkg/errors"
)

// Decode reads a single JSON value from r. It returns an error with code
// INVALID_INPUT for empty input and INVALID_JSON for syntax errors or
// trailing data after the first value.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "input is empty")
		}
		var syntaxErr *json.SyntaxError
		if stderrors.As(err, &syntaxErr) {
			return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "syntax error at offset %d", syntaxErr.Offset)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "malformed JSON")
	}

	// A well-formed document holds exactly one value.
	if _, err := dec.Token(); !stderrors.Is(err, io.EOF) {
		return nil, errors.New(errors.ErrCodeInvalidJSON, "trailing data after first JSON value")
	}

	return v, nil
}

// DecodeBytes parses a single JSON value from data.
func DecodeBytes(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// decodeValue consumes the next complete value from the token stream.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			// Unbalanced '}' or ']' is caught by the decoder before we see
			// it; this is a safety net.
			return nil, fmt.Errorf("unexpected delimiter %q", tok.String())
		}
	case nil:
		return Null{}, nil
	case bool:
		return Bool(tok), nil
	case json.Number:
		return Number(tok.String()), nil
	case string:
		return String(tok), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// decodeObject consumes members until the closing brace, preserving order.
func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: key, Value: val})
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
