package validators

import "strings"

// NormalizePlate deixa a placa em maiúsculas, sem espaços nem hífen.
// A comparação de placas é sempre feita sobre a forma normalizada.
func NormalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	plate = strings.ReplaceAll(plate, "-", "")
	return strings.ReplaceAll(plate, " ", "")
}

// IsPlateValid aceita o padrão antigo (ABC1234) e o Mercosul (ABC1D23).
func IsPlateValid(plate string) bool {
	if len(plate) != 7 {
		return false
	}

	isLetter := func(r byte) bool { return r >= 'A' && r <= 'Z' }
	isDigit := func(r byte) bool { return r >= '0' && r <= '9' }

	if !isLetter(plate[0]) || !isLetter(plate[1]) || !isLetter(plate[2]) {
		return false
	}
	if !isDigit(plate[3]) {
		return false
	}
	if !isDigit(plate[5]) || !isDigit(plate[6]) {
		return false
	}

	// quinta posição diferencia os dois padrões
	return isLetter(plate[4]) || isDigit(plate[4])
}
