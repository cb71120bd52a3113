package ubl

import "unicode"

// pesos para el cálculo del dígito de verificación NIT (Orden Administrativa 4 de 1989, DIAN).
// Se aplican a los 9 primeros dígitos del NIT, de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// NormalizeNIT deja solo los dígitos del NIT tal como viene en cbc:CompanyID
// ("900.123.456-1", "900123456-1" o "9001234561" producen lo mismo).
// No valida el dígito de verificación; los XML de terceros lo traen de formas
// inconsistentes y el reporte solo necesita un identificador comparable.
func NormalizeNIT(taxID string) string {
	return string(extractDigits(taxID))
}

// ComputeNITVerificationDigit calcula el dígito de verificación módulo 11 para
// los 9 primeros dígitos del NIT.
func ComputeNITVerificationDigit(taxID string) (byte, bool) {
	digits := extractDigits(taxID)
	if len(digits) < 9 {
		return 0, false
	}
	var sum int
	for i, d := range digits[:9] {
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder), true
	}
	return byte('0' + (11 - remainder)), true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
