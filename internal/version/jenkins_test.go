package version

import (
	"errors"
	"testing"
)

func TestParseJenkins(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantMajor    int
		wantMinor    int
		wantPatch    int
		wantHasPatch bool
		wantErr      bool
	}{
		{
			name:      "weekly release without patch",
			input:     "2.333",
			wantMajor: 2,
			wantMinor: 333,
		},
		{
			name:         "lts release with patch",
			input:        "2.332.1",
			wantMajor:    2,
			wantMinor:    332,
			wantPatch:    1,
			wantHasPatch: true,
		},
		{
			name:         "explicit zero patch",
			input:        "2.333.0",
			wantMajor:    2,
			wantMinor:    333,
			wantPatch:    0,
			wantHasPatch: true,
		},
		{
			name:      "prerelease discarded",
			input:     "2.333-rc",
			wantMajor: 2,
			wantMinor: 333,
		},
		{
			name:    "major only",
			input:   "2",
			wantErr: true,
		},
		{
			name:    "leading zero minor",
			input:   "2.033",
			wantErr: true,
		},
		{
			name:    "four components",
			input:   "2.333.1.1",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseJenkins(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseJenkins(%q): expected error, got %v", tt.input, v)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("ParseJenkins(%q): error is %T, want *ParseError", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseJenkins(%q): %v", tt.input, err)
			}
			if v.Major() != tt.wantMajor || v.Minor() != tt.wantMinor {
				t.Errorf("components: got %d.%d, want %d.%d", v.Major(), v.Minor(), tt.wantMajor, tt.wantMinor)
			}
			patch, ok := v.Patch()
			if ok != tt.wantHasPatch {
				t.Errorf("patch presence: got %v, want %v", ok, tt.wantHasPatch)
			}
			if ok && patch != tt.wantPatch {
				t.Errorf("patch: got %d, want %d", patch, tt.wantPatch)
			}
		})
	}
}

func TestJenkinsString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2.333", "2.333"},
		{"2.333.5", "2.333.5"},
		{"2.333.0", "2.333.0"},
		{"2.333-rc+build", "2.333"},
	}

	for _, tt := range tests {
		v := mustJenkins(t, tt.input)
		if v.String() != tt.want {
			t.Errorf("JenkinsVersion(%q).String(): got %q, want %q", tt.input, v.String(), tt.want)
		}
	}
}

func TestJenkinsEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"both without patch", "2.333", "2.333", true},
		{"both with same patch", "2.333.5", "2.333.5", true},
		{"absent patch vs explicit zero", "2.333", "2.333.0", false},
		{"absent patch vs real patch", "2.333", "2.333.5", false},
		{"different minors", "2.333", "2.334", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustJenkins(t, tt.a)
			b := mustJenkins(t, tt.b)
			if got := a.Equal(b); got != tt.want {
				t.Errorf("Equal(%q, %q): got %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equality is symmetric.
			if got := b.Equal(a); got != tt.want {
				t.Errorf("Equal(%q, %q): got %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}

	if mustJenkins(t, "2.333").Equal(nil) {
		t.Error("a version should not equal nil")
	}
}
