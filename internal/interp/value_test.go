package interp

import "testing"

func TestValueStrings(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{&IntegerValue{Value: 42}, "42"},
		{&IntegerValue{Value: -7}, "-7"},
		{&FloatValue{Value: 3.5}, "3.5"},
		{&FloatValue{Value: 2}, "2"},
		{&StringValue{Value: "hello"}, "hello"},
		{&BooleanValue{Value: true}, "true"},
		{&BooleanValue{Value: false}, "false"},
		{&NullValue{}, "null"},
		{&IdentifierValue{Name: "x"}, "x"},
		{&OperatorValue{Op: "not"}, "not"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueTypes(t *testing.T) {
	tests := []struct {
		value Value
		want  ValueType
	}{
		{&IntegerValue{Value: 1}, NUMBER},
		{&FloatValue{Value: 1}, NUMBER},
		{&StringValue{}, STRING},
		{&BooleanValue{}, BOOLEAN},
		{&NullValue{}, NULL},
		{&IdentifierValue{Name: "x"}, IDENTIFIER},
		{&OperatorValue{Op: "-"}, OPERATOR},
	}

	for _, tt := range tests {
		if got := tt.value.Type(); got != tt.want {
			t.Errorf("Type() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsFalsey(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"zero integer", &IntegerValue{Value: 0}, true},
		{"nonzero integer", &IntegerValue{Value: 3}, false},
		{"zero float", &FloatValue{Value: 0}, true},
		{"nonzero float", &FloatValue{Value: 0.1}, false},
		{"empty string", &StringValue{Value: ""}, true},
		{"nonempty string", &StringValue{Value: "a"}, false},
		{"false", &BooleanValue{Value: false}, true},
		{"true", &BooleanValue{Value: true}, false},
		{"null", &NullValue{}, true},
		{"nil", nil, true},
		{"identifier", &IdentifierValue{Name: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFalsey(tt.value); got != tt.want {
				t.Errorf("IsFalsey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValuesEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal integers", &IntegerValue{Value: 2}, &IntegerValue{Value: 2}, true},
		{"integer and float", &IntegerValue{Value: 2}, &FloatValue{Value: 2}, true},
		{"unequal numbers", &IntegerValue{Value: 2}, &FloatValue{Value: 2.5}, false},
		{"equal strings", &StringValue{Value: "a"}, &StringValue{Value: "a"}, true},
		{"string and number", &StringValue{Value: "2"}, &IntegerValue{Value: 2}, false},
		{"booleans", &BooleanValue{Value: true}, &BooleanValue{Value: true}, true},
		{"nulls", &NullValue{}, &NullValue{}, true},
		{"null and zero", &NullValue{}, &IntegerValue{Value: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valuesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("valuesEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControlOutcomes(t *testing.T) {
	if !isControl(&ReturnValue{Value: &IntegerValue{Value: 1}}) {
		t.Error("ReturnValue should be a control outcome")
	}
	if !isControl(&BreakSignal{}) {
		t.Error("BreakSignal should be a control outcome")
	}
	if !isControl(&ContinueSignal{}) {
		t.Error("ContinueSignal should be a control outcome")
	}
	if isControl(&IntegerValue{Value: 1}) {
		t.Error("IntegerValue should not be a control outcome")
	}
}
