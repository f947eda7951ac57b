package jsonval

import (
	"strings"
	"testing"

	"github.com/kweiler/jsonheat/pkg/errors"
)

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"null", `null`, Null{}},
		{"true", `true`, Bool(true)},
		{"false", `false`, Bool(false)},
		{"integer", `42`, Number("42")},
		{"float", `3.25`, Number("3.25")},
		{"exponent literal preserved", `1e3`, Number("1e3")},
		{"string", `"hello"`, String("hello")},
		{"escaped string", `"a\nb"`, String("a\nb")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBytes([]byte(tt.input))
			if err != nil {
				t.Fatalf("DecodeBytes(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("DecodeBytes(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeObjectOrder(t *testing.T) {
	input := `{"zebra": 1, "apple": 2, "mango": 3, "apple2": {"nested": true}}`

	got, err := DecodeBytes([]byte(input))
	if err != nil {
		t.Fatalf("DecodeBytes error: %v", err)
	}

	obj, ok := got.(Object)
	if !ok {
		t.Fatalf("DecodeBytes returned %T, want Object", got)
	}

	wantKeys := []string{"zebra", "apple", "mango", "apple2"}
	if len(obj) != len(wantKeys) {
		t.Fatalf("object has %d members, want %d", len(obj), len(wantKeys))
	}
	for i, key := range wantKeys {
		if obj[i].Key != key {
			t.Errorf("member %d key = %q, want %q", i, obj[i].Key, key)
		}
	}

	nested, ok := obj[3].Value.(Object)
	if !ok {
		t.Fatalf("member apple2 is %T, want Object", obj[3].Value)
	}
	if nested[0].Key != "nested" || nested[0].Value != Bool(true) {
		t.Errorf("nested member = %+v, want nested=true", nested[0])
	}
}

func TestDecodeArray(t *testing.T) {
	got, err := DecodeBytes([]byte(`[1, "two", [true, null]]`))
	if err != nil {
		t.Fatalf("DecodeBytes error: %v", err)
	}

	arr, ok := got.(Array)
	if !ok {
		t.Fatalf("DecodeBytes returned %T, want Array", got)
	}
	if len(arr) != 3 {
		t.Fatalf("array has %d elements, want 3", len(arr))
	}
	if arr[0] != Number("1") || arr[1] != String("two") {
		t.Errorf("first elements = %#v, %#v", arr[0], arr[1])
	}

	inner, ok := arr[2].(Array)
	if !ok {
		t.Fatalf("third element is %T, want Array", arr[2])
	}
	if len(inner) != 2 || inner[0] != Bool(true) || inner[1] != (Null{}) {
		t.Errorf("inner array = %#v", inner)
	}
}

func TestDecodeEmptyContainers(t *testing.T) {
	obj, err := DecodeBytes([]byte(`{}`))
	if err != nil {
		t.Fatalf("DecodeBytes({}) error: %v", err)
	}
	if o, ok := obj.(Object); !ok || len(o) != 0 {
		t.Errorf("DecodeBytes({}) = %#v, want empty Object", obj)
	}

	arr, err := DecodeBytes([]byte(`[]`))
	if err != nil {
		t.Fatalf("DecodeBytes([]) error: %v", err)
	}
	if a, ok := arr.(Array); !ok || len(a) != 0 {
		t.Errorf("DecodeBytes([]) = %#v, want empty Array", arr)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty input", ``, errors.ErrCodeInvalidInput},
		{"whitespace only", "  \n\t", errors.ErrCodeInvalidInput},
		{"syntax error", `{"a": `, errors.ErrCodeInvalidJSON},
		{"bare garbage", `oops`, errors.ErrCodeInvalidJSON},
		{"trailing value", `{"a": 1} {"b": 2}`, errors.ErrCodeInvalidJSON},
		{"trailing garbage", `1 x`, errors.ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Decode(%q) succeeded, want error", tt.input)
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Decode(%q) code = %q, want %q", tt.input, got, tt.code)
			}
		})
	}
}
