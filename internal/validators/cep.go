package validators

import "strings"

// NormalizeCEP remove máscara ("01310-100" → "01310100").
func NormalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCEPValid exige exatamente 8 dígitos, já sem máscara.
func IsCEPValid(cep string) bool {
	if len(cep) != 8 {
		return false
	}
	for _, r := range cep {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
