package attr

import (
	"encoding/json"
	"testing"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		kind    Kind
		missing bool
	}{
		{"zero value is missing", Value{}, Missing, true},
		{"none is missing", None(), Missing, true},
		{"int", IntVal(250), Int, false},
		{"real", RealVal(4.5), Real, false},
		{"text", TextVal("Coupe"), Text, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.value.IsMissing(); got != tt.missing {
				t.Errorf("IsMissing() = %v, want %v", got, tt.missing)
			}
		})
	}
}

func TestNum(t *testing.T) {
	if v, ok := IntVal(250).Num(); !ok || v != 250 {
		t.Errorf("IntVal(250).Num() = %v, %v; want 250, true", v, ok)
	}
	if v, ok := RealVal(4.5).Num(); !ok || v != 4.5 {
		t.Errorf("RealVal(4.5).Num() = %v, %v; want 4.5, true", v, ok)
	}
	if _, ok := TextVal("Coupe").Num(); ok {
		t.Error("TextVal.Num() ok = true, want false")
	}
	if _, ok := None().Num(); ok {
		t.Error("None().Num() ok = true, want false")
	}
}

func TestText(t *testing.T) {
	if s, ok := TextVal("Coupe").Text(); !ok || s != "Coupe" {
		t.Errorf("TextVal.Text() = %q, %v; want %q, true", s, ok, "Coupe")
	}
	if _, ok := IntVal(1).Text(); ok {
		t.Error("IntVal.Text() ok = true, want false")
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"int is a bare integer", IntVal(250), "250"},
		{"real keeps its fraction", RealVal(4.5), "4.5"},
		{"text is a string", TextVal("Coupe"), `"Coupe"`},
		{"missing is null", None(), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMapMarshal(t *testing.T) {
	m := Map{
		"top_speed": IntVal(250),
		"ncap":      RealVal(4.5),
		"brand":     TextVal("Aurora Motors"),
		"mileage":   None(),
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if decoded["top_speed"] != float64(250) {
		t.Errorf("top_speed = %v, want 250", decoded["top_speed"])
	}
	if decoded["brand"] != "Aurora Motors" {
		t.Errorf("brand = %v, want Aurora Motors", decoded["brand"])
	}
	if v, present := decoded["mileage"]; !present || v != nil {
		t.Errorf("mileage = %v (present=%v), want explicit null", v, present)
	}
}
