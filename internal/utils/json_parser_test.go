package utils

import (
	"testing"
)

func TestParseAIJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]interface{}
		wantErr bool
	}{
		{
			name:  "Pure JSON",
			input: `{"gender": "male", "current_weight": 90}`,
			want: map[string]interface{}{
				"gender":         "male",
				"current_weight": float64(90),
			},
			wantErr: false,
		},
		{
			name: "JSON in markdown code block",
			input: "```json\n" +
				`{"goal": "maintain", "target_timeline_value": 20}` + "\n```",
			want: map[string]interface{}{
				"goal":                  "maintain",
				"target_timeline_value": float64(20),
			},
			wantErr: false,
		},
		{
			name:  "JSON with surrounding text",
			input: `Here is the extracted data: {"gender": "female", "activity_level": "light"} hope that helps.`,
			want: map[string]interface{}{
				"gender":         "female",
				"activity_level": "light",
			},
			wantErr: false,
		},
		{
			name:  "JSON with trailing comma",
			input: `{"date_of_birth": "2000-07-20",}`,
			want: map[string]interface{}{
				"date_of_birth": "2000-07-20",
			},
			wantErr: false,
		},
		{
			name:  "JSON with unquoted keys",
			input: `{gender: "male", goal: "lose_weight"}`,
			want: map[string]interface{}{
				"gender": "male",
				"goal":   "lose_weight",
			},
			wantErr: false,
		},
		{
			name:  "JSON with leading byte order mark",
			input: "\uFEFF" + `{"target_speed": "fast",}`,
			want: map[string]interface{}{
				"target_speed": "fast",
			},
			wantErr: false,
		},
		{
			name:    "Empty string",
			input:   "",
			want:    nil,
			wantErr: true,
		},
		{
			name:    "Invalid JSON",
			input:   "not json at all",
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]interface{}
			err := ParseAIJSON(tt.input, &got)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAIJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseAIJSON() got = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("ParseAIJSON() key %q = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestExtractBalancedBraces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		open  rune
		close rune
		want  string
	}{
		{
			name:  "Simple object",
			input: `{"a": 1}`,
			open:  '{',
			close: '}',
			want:  `{"a": 1}`,
		},
		{
			name:  "Nested objects",
			input: `{"a": {"b": 2}}`,
			open:  '{',
			close: '}',
			want:  `{"a": {"b": 2}}`,
		},
		{
			name:  "Object with string containing braces",
			input: `{"text": "Hello {world}"}`,
			open:  '{',
			close: '}',
			want:  `{"text": "Hello {world}"}`,
		},
		{
			name:  "Array",
			input: `[1, 2, 3]`,
			open:  '[',
			close: ']',
			want:  `[1, 2, 3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractBalancedBraces(tt.input, tt.open, tt.close)
			if got != tt.want {
				t.Errorf("extractBalancedBraces() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Valid object", input: `{"test": true}`, want: true},
		{name: "Valid array", input: `[1, 2, 3]`, want: true},
		{name: "Invalid JSON", input: `{test: true}`, want: false},
		{name: "Empty string", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateJSON(tt.input); got != tt.want {
				t.Errorf("ValidateJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}
