package docker

import "testing"

func TestNormalizeImageRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare official image",
			input: "jenkins/jenkins",
			want:  "docker.io/jenkins/jenkins:latest",
		},
		{
			name:  "tagged image",
			input: "jenkins/jenkins:2.332.1-lts",
			want:  "docker.io/jenkins/jenkins:2.332.1-lts",
		},
		{
			name:  "library image",
			input: "nginx",
			want:  "docker.io/library/nginx:latest",
		},
		{
			name:  "fully qualified reference",
			input: "ghcr.io/owner/app:1.0.0",
			want:  "ghcr.io/owner/app:1.0.0",
		},
		{
			name:  "digest reference",
			input: "nginx@sha256:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			want:  "docker.io/library/nginx@sha256:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		},
		{
			name:    "uppercase repository rejected",
			input:   "Jenkins/Jenkins",
			wantErr: true,
		},
		{
			name:    "empty reference rejected",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeImageRef(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeImageRef(%q): expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeImageRef(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeImageRef(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
