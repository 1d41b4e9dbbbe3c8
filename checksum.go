package brtypes

import "fmt"

const (
	cpfLength      = 11
	cnpjLength     = 14
	cpfBodyLength  = cpfLength - 2
	cnpjBodyLength = cnpjLength - 2
)

// Weight sequences for the two mod-11 passes.
var (
	cpfWeights = [2][]int{
		{10, 9, 8, 7, 6, 5, 4, 3, 2},
		{11, 10, 9, 8, 7, 6, 5, 4, 3, 2},
	}
	cnpjWeights = [2][]int{
		{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
		{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
	}
)

// CPFCheckDigits computes the two check digits for a 9-digit CPF body.
func CPFCheckDigits(body string) (string, error) {
	if len(body) != cpfBodyLength || !isDigits(body) {
		return "", fmt.Errorf("%w: CPF body must be %d digits, got %q", ErrInvalidBody, cpfBodyLength, body)
	}
	return checkDigits(body, cpfWeights), nil
}

// CNPJCheckDigits computes the two check digits for a 12-digit CNPJ body.
func CNPJCheckDigits(body string) (string, error) {
	if len(body) != cnpjBodyLength || !isDigits(body) {
		return "", fmt.Errorf("%w: CNPJ body must be %d digits, got %q", ErrInvalidBody, cnpjBodyLength, body)
	}
	return checkDigits(body, cnpjWeights), nil
}

// checkDigits runs both passes; the second pass covers the body plus the first digit.
// body must already be validated against len(weights[0]).
func checkDigits(body string, weights [2][]int) string {
	first := mod11(body, weights[0])
	second := mod11(body+string(first), weights[1])
	return string([]byte{first, second})
}

func mod11(digits string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}

// hasValidCheckDigits reports whether the trailing two digits of number match its body.
// number must be all digits.
func hasValidCheckDigits(number string, weights [2][]int) bool {
	n := len(weights[0])
	return checkDigits(number[:n], weights) == number[n:]
}
