package errors

import (
	"math"
	"strings"
	"testing"
)

func TestCheckVar(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		tag     string
		wantErr bool
	}{
		{"channel low bound", 0, "gte=0,lte=255", false},
		{"channel high bound", 255, "gte=0,lte=255", false},
		{"channel too high", 256, "gte=0,lte=255", true},
		{"channel negative", -1, "gte=0,lte=255", true},
		{"alpha in range", 0.5, "gte=0,lte=1", false},
		{"alpha too high", 1.01, "gte=0,lte=1", true},
		{"thickness max", 50.0, "gte=0,lte=50", false},
		{"thickness over", 50.5, "gte=0,lte=50", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckVar("field", tt.value, tt.tag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckVar(%v, %q) error = %v, wantErr %v", tt.value, tt.tag, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeValidation) {
				t.Errorf("CheckVar returned wrong code: %v", err)
			}
		})
	}
}

func TestCheckFloat(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		tag     string
		wantErr bool
	}{
		{"finite without tag", -3.5, "", false},
		{"nan without tag", math.NaN(), "", true},
		{"positive infinity", math.Inf(1), "", true},
		{"negative infinity", math.Inf(-1), "gte=0", true},
		{"infinity rejected before gte", math.Inf(1), "gte=0", true},
		{"in range", 4, "gte=0", false},
		{"below range", -1, "gte=0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFloat("radius", tt.value, tt.tag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFloat(%v, %q) error = %v, wantErr %v", tt.value, tt.tag, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeValidation) {
				t.Errorf("CheckFloat returned wrong code: %v", err)
			}
		})
	}
}

func TestCheckVarMessageNamesField(t *testing.T) {
	err := CheckVar("red", 300, "gte=0,lte=255")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := UserMessage(err)
	if !strings.Contains(msg, "red") || !strings.Contains(msg, "300") {
		t.Errorf("message %q should name field and value", msg)
	}
}

func TestCheckStruct(t *testing.T) {
	type sample struct {
		Name  string  `validate:"required"`
		Ratio float64 `validate:"gte=0,lte=1"`
	}

	if err := CheckStruct(sample{Name: "ok", Ratio: 0.3}); err != nil {
		t.Errorf("valid struct: %v", err)
	}

	err := CheckStruct(sample{Ratio: 2})
	if err == nil {
		t.Fatal("expected error")
	}
	if !Is(err, ErrCodeValidation) {
		t.Errorf("wrong code: %v", err)
	}
	msg := UserMessage(err)
	if !strings.Contains(msg, "Name") || !strings.Contains(msg, "Ratio") {
		t.Errorf("message %q should list every violation", msg)
	}
}
