package buildinfo

import "testing"

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in      string
		want    Semver
		wantErr bool
	}{
		{in: "1.2.3", want: Semver{1, 2, 3}},
		{in: "v0.4.10", want: Semver{0, 4, 10}},
		{in: "2.0.0-rc1", want: Semver{2, 0, 0}},
		{in: "1.0.0+build.7", want: Semver{1, 0, 0}},
		{in: "dev", wantErr: true},
		{in: "1.2", wantErr: true},
		{in: "1.x.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSemver(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSemver(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSemver(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSemver(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOlderThanCurrent(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "1.4.0"
	tests := []struct {
		version string
		want    bool
	}{
		{"1.3.9", true},
		{"v0.9.0", true},
		{"1.4.0", false},
		{"1.10.0", false},
		{"dev", false},
	}
	for _, tt := range tests {
		if got := OlderThanCurrent(tt.version); got != tt.want {
			t.Errorf("OlderThanCurrent(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}

	Version = "dev"
	if OlderThanCurrent("0.0.1") {
		t.Error("dev build should never report older versions")
	}
}
