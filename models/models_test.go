package models

import (
	"testing"
)

// Test payload encoding
func TestPayloadEncode(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    string
	}{
		{"empty", Payload{}, ""},
		{"single", Payload{{"key", "abc123"}}, "key=abc123"},
		{"empty value", Payload{{"key", ""}}, "key="},
		{"space", Payload{{"key", "a b"}}, "key=a+b"},
		{"reserved", Payload{{"key", "a&b=c"}, {"secret", "100%"}}, "key=a%26b%3Dc&secret=100%25"},
		{"order kept", Payload{{"secret", "s"}, {"key", "k"}}, "secret=s&key=k"},
		{"duplicates", Payload{{"coin", "btc"}, {"coin", "eth"}}, "coin=btc&coin=eth"},
		{"crlf", Payload{{"note", "a\r\nb"}}, "note=a%0D%0Ab"},
		{"unicode", Payload{{"name", "é"}}, "name=%C3%A9"},
		{"browser safe marks", Payload{{"note", "hi!(it's)*~"}}, "note=hi!(it's)*~"},
		{"escaped percent not unescaped", Payload{{"note", "%21"}}, "note=%2521"},
	}

	for _, tt := range tests {
		if got := tt.payload.Encode(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

// Test payload accessors
func TestPayloadAccessors(t *testing.T) {
	var p Payload
	p.Add("key", "abc123")
	p.Add("secret", "s3cr3t")
	p.Add("key", "second")

	if got, ok := p.Get("key"); !ok || got != "abc123" {
		t.Errorf("Expected first key value abc123, got %q (%v)", got, ok)
	}

	if _, ok := p.Get("missing"); ok {
		t.Error("Expected missing field to be absent")
	}

	names := p.Names()
	if len(names) != 3 || names[0] != "key" || names[1] != "secret" || names[2] != "key" {
		t.Errorf("Unexpected names: %v", names)
	}

	values := p.Values()
	if len(values["key"]) != 2 {
		t.Errorf("Expected 2 key values, got %v", values["key"])
	}
}

// Test field name round trip
func TestFieldNames(t *testing.T) {
	if got, err := DecodeFieldNames(""); err != nil || got != nil {
		t.Errorf("Expected nil for empty string, got %v (%v)", got, err)
	}

	if stored, err := EncodeFieldNames(nil); err != nil || stored != "" {
		t.Errorf("Expected empty string for no names, got %q (%v)", stored, err)
	}

	names := []string{"key", "a,b", `quote"d`}
	stored, err := EncodeFieldNames(names)
	if err != nil {
		t.Fatalf("Failed to encode field names: %v", err)
	}
	got, err := DecodeFieldNames(stored)
	if err != nil {
		t.Fatalf("Failed to decode field names: %v", err)
	}
	if len(got) != 3 || got[0] != "key" || got[1] != "a,b" || got[2] != `quote"d` {
		t.Errorf("Unexpected round trip result: %v", got)
	}

	if _, err := DecodeFieldNames("key,secret"); err == nil {
		t.Error("Expected error for non-JSON field names")
	}
}

// Test FieldPresets validation
func TestFieldPresetsValidation(t *testing.T) {
	valid := FieldPresets{Fields: map[string]string{"key": "abc123"}}
	if errors := valid.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid presets, got: %v", errors)
	}

	invalid := FieldPresets{FormID: "bad id", Fields: map[string]string{}}
	if errors := invalid.Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid presets, got: %v", errors)
	}

	blankName := FieldPresets{Fields: map[string]string{" ": "x"}}
	if errors := blankName.Validate(); len(errors) != 1 {
		t.Errorf("Expected 1 error for blank field name, got: %v", errors)
	}
}
