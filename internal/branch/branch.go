// Package branch holds the academic branch code tables shared by auth,
// curriculum and progress: the backend enum persisted in storage, the short
// codes that appear inside USNs, and the mapping between the two.
package branch

import (
	"regexp"
	"strings"
)

// Backend branch codes accepted on User and Progress rows.
var backendBranches = map[string]bool{
	"CSE": true, "ISE": true, "ECE": true, "EEE": true, "MECH": true,
	"CIVIL": true, "AIML": true, "DS": true, "CSBS": true, "IT": true,
}

// Short codes as they appear inside a USN (e.g. 1si23is080 -> IS). Subjects
// are seeded under these codes.
var usnCodes = []string{"CV", "CS", "IS", "CI", "BT", "ME", "IM", "CH", "EE", "EC", "ET", "EI"}

var toBackend = map[string]string{
	"CS": "CSE",
	"IS": "ISE",
	"EC": "ECE",
	"EE": "EEE",
	"ME": "MECH",
	"CV": "CIVIL",
	"CI": "AIML",
}

var toUI = map[string]string{
	"CSE":   "CS",
	"ISE":   "IS",
	"ECE":   "EC",
	"EEE":   "EE",
	"MECH":  "ME",
	"CIVIL": "CV",
	"AIML":  "CI",
}

var (
	usnPattern       = regexp.MustCompile(`^[a-zA-Z0-9]{8,12}$`)
	usnBranchPattern = regexp.MustCompile(`(?i)\d{2}(cv|cs|is|ci|bt|me|im|ch|ee|ec|et|ei)`)
)

func IsBackendBranch(code string) bool {
	return backendBranches[strings.ToUpper(strings.TrimSpace(code))]
}

// USNCodes returns the seedable short branch codes in a stable order.
func USNCodes() []string {
	out := make([]string, len(usnCodes))
	copy(out, usnCodes)
	return out
}

// ToBackend maps a short USN code to the backend enum value. Codes with no
// mapping pass through unchanged (BT, IM, CH, ET, EI).
func ToBackend(code string) string {
	value := strings.ToUpper(strings.TrimSpace(code))
	if mapped, ok := toBackend[value]; ok {
		return mapped
	}
	return value
}

// ToUI is the inverse of ToBackend.
func ToUI(code string) string {
	value := strings.ToUpper(strings.TrimSpace(code))
	if mapped, ok := toUI[value]; ok {
		return mapped
	}
	return value
}

// DeriveFromUSN extracts the short branch code embedded in a USN, e.g.
// "1si23is080" -> "IS". Returns "" when no code is present.
func DeriveFromUSN(usn string) string {
	value := strings.TrimSpace(usn)
	if value == "" {
		return ""
	}
	m := usnBranchPattern.FindStringSubmatch(value)
	if len(m) < 2 {
		return ""
	}
	return strings.ToUpper(m[1])
}

// ValidUSN accepts 8-12 alphanumeric characters.
func ValidUSN(usn string) bool {
	return usnPattern.MatchString(strings.TrimSpace(usn))
}
