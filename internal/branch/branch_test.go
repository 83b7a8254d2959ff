package branch

import "testing"

func TestDeriveFromUSN(t *testing.T) {
	cases := []struct {
		name string
		usn  string
		want string
	}{
		{name: "standard_usn", usn: "1si23is080", want: "IS"},
		{name: "uppercase_usn", usn: "VTM22CS001", want: "CS"},
		{name: "electronics", usn: "1rv21ec042", want: "EC"},
		{name: "no_branch_code", usn: "12345678", want: ""},
		{name: "empty", usn: "", want: ""},
		{name: "whitespace", usn: "  1si23is080  ", want: "IS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveFromUSN(tc.usn); got != tc.want {
				t.Fatalf("DeriveFromUSN(%q)=%q, want %q", tc.usn, got, tc.want)
			}
		})
	}
}

func TestToBackendAndBack(t *testing.T) {
	cases := []struct {
		ui      string
		backend string
	}{
		{ui: "CS", backend: "CSE"},
		{ui: "IS", backend: "ISE"},
		{ui: "EC", backend: "ECE"},
		{ui: "EE", backend: "EEE"},
		{ui: "ME", backend: "MECH"},
		{ui: "CV", backend: "CIVIL"},
		{ui: "CI", backend: "AIML"},
		// Unmapped codes pass through.
		{ui: "BT", backend: "BT"},
		{ui: "ET", backend: "ET"},
	}
	for _, tc := range cases {
		if got := ToBackend(tc.ui); got != tc.backend {
			t.Errorf("ToBackend(%q)=%q, want %q", tc.ui, got, tc.backend)
		}
		if got := ToUI(tc.backend); got != tc.ui {
			t.Errorf("ToUI(%q)=%q, want %q", tc.backend, got, tc.ui)
		}
	}
}

func TestValidUSN(t *testing.T) {
	cases := []struct {
		usn  string
		want bool
	}{
		{"1si23is080", true},
		{"VTM22CS001", true},
		{"short", false},
		{"waytoolongusn12345", false},
		{"has space12", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidUSN(tc.usn); got != tc.want {
			t.Errorf("ValidUSN(%q)=%v, want %v", tc.usn, got, tc.want)
		}
	}
}

func TestIsBackendBranch(t *testing.T) {
	if !IsBackendBranch("CSE") || !IsBackendBranch("it") {
		t.Fatal("expected CSE and it to be valid backend branches")
	}
	if IsBackendBranch("CS") || IsBackendBranch("") {
		t.Fatal("short/ui codes are not backend branches")
	}
}
