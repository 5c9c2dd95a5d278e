package version

import (
	"errors"
	"testing"
)

func TestParseSemantic(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMajor int
		wantMinor int
		wantPatch int
		wantErr   bool
	}{
		{
			name:      "plain version",
			input:     "1.2.3",
			wantMajor: 1,
			wantMinor: 2,
			wantPatch: 3,
		},
		{
			name:      "zeros",
			input:     "0.0.0",
			wantMajor: 0,
			wantMinor: 0,
			wantPatch: 0,
		},
		{
			name:      "large components",
			input:     "10.20.30",
			wantMajor: 10,
			wantMinor: 20,
			wantPatch: 30,
		},
		{
			name:      "prerelease discarded",
			input:     "1.2.3-alpha.1",
			wantMajor: 1,
			wantMinor: 2,
			wantPatch: 3,
		},
		{
			name:      "build metadata discarded",
			input:     "1.2.3+build.45",
			wantMajor: 1,
			wantMinor: 2,
			wantPatch: 3,
		},
		{
			name:      "prerelease and build",
			input:     "2.0.0-rc.1+sha.5114f85",
			wantMajor: 2,
			wantMinor: 0,
			wantPatch: 0,
		},
		{
			name:    "missing patch",
			input:   "1.2",
			wantErr: true,
		},
		{
			name:    "v prefix",
			input:   "v1.2.3",
			wantErr: true,
		},
		{
			name:    "leading zero component",
			input:   "1.02.3",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			input:   "1.2.3garbage",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "negative component",
			input:   "-1.2.3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseSemantic(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSemantic(%q): expected error, got %v", tt.input, v)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("ParseSemantic(%q): error is %T, want *ParseError", tt.input, err)
				}
				if parseErr.Input != tt.input {
					t.Errorf("ParseError.Input: got %q, want %q", parseErr.Input, tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseSemantic(%q): %v", tt.input, err)
			}
			if v.Major() != tt.wantMajor || v.Minor() != tt.wantMinor {
				t.Errorf("components: got %d.%d, want %d.%d", v.Major(), v.Minor(), tt.wantMajor, tt.wantMinor)
			}
			if patch, ok := v.Patch(); !ok || patch != tt.wantPatch {
				t.Errorf("patch: got %d (ok=%v), want %d", patch, ok, tt.wantPatch)
			}
		})
	}
}

func TestSemanticString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.2.3", "1.2.3"},
		{"1.2.3-alpha", "1.2.3"},
		{"1.2.3+build", "1.2.3"},
		{"0.1.0-beta.2+exp.sha", "0.1.0"},
	}

	for _, tt := range tests {
		v := mustSemantic(t, tt.input)
		if v.String() != tt.want {
			t.Errorf("SemanticVersion(%q).String(): got %q, want %q", tt.input, v.String(), tt.want)
		}
	}
}

func TestSemanticEqual(t *testing.T) {
	a := mustSemantic(t, "1.2.3")

	if !a.Equal(mustSemantic(t, "1.2.3")) {
		t.Error("1.2.3 should equal 1.2.3")
	}
	if !a.Equal(mustSemantic(t, "1.2.3-alpha+build")) {
		t.Error("prerelease and build metadata should not affect equality")
	}
	if a.Equal(mustSemantic(t, "1.2.4")) {
		t.Error("1.2.3 should not equal 1.2.4")
	}
	if a.Equal(nil) {
		t.Error("a version should not equal nil")
	}
}

func TestSemanticMutators(t *testing.T) {
	v := mustSemantic(t, "1.2.3")

	v.SetMajor(4)
	v.SetMinor(5)
	v.SetPatch(6)
	if v.String() != "4.5.6" {
		t.Fatalf("after setters: got %q, want %q", v.String(), "4.5.6")
	}

	v.IncrementMajor(1)
	v.IncrementMinor(2)
	v.IncrementPatch(3)
	if v.String() != "5.7.9" {
		t.Fatalf("after incrementers: got %q, want %q", v.String(), "5.7.9")
	}
}
