package validation

// cnpWeights is the fixed control-sum weight sequence applied to the first
// twelve digits of a CNP (cod numeric personal).
var cnpWeights = [12]int{2, 7, 9, 1, 4, 6, 3, 5, 8, 2, 7, 9}

// ValidateCNP checks a Romanian personal numeric code: exactly 13 digits,
// with the 13th digit equal to the weighted checksum of the first 12.
// A weighted sum remainder of 10 maps to a check digit of 1.
func ValidateCNP(cnp string) bool {
	if len(cnp) != 13 {
		return false
	}
	sum := 0
	for i := 0; i < 12; i++ {
		d := cnp[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * cnpWeights[i]
	}
	check := cnp[12]
	if check < '0' || check > '9' {
		return false
	}
	expected := sum % 11
	if expected == 10 {
		expected = 1
	}
	return int(check-'0') == expected
}

// ValidateCORCode checks the format of a COR occupation code: exactly 6
// digits. The code is not resolved against the full COR nomenclature.
func ValidateCORCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for i := 0; i < 6; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
