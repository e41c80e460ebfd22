package stake

import (
	"strconv"
)

// BetID identifica a aposta (bet offer) que recebe o stake
type BetID uint32

// CustomerID identifica o cliente resolvido a partir da sessão
type CustomerID uint32

// Amount é o valor apostado, em unidades inteiras
type Amount uint32

// ParseUnsigned aplica a gramática única de inteiros sem sinal usada para
// bet id e valor do stake: só dígitos ASCII, pelo menos um, cabendo em 32 bits.
func ParseUnsigned(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// ParseBetID valida um segmento de path como BetID
func ParseBetID(s string) (BetID, error) {
	n, ok := ParseUnsigned(s)
	if !ok {
		return 0, Malformed("Invalid bet ID format")
	}
	return BetID(n), nil
}

// ParseAmount valida o texto (já sem espaços) do corpo como Amount
func ParseAmount(s string) (Amount, error) {
	n, ok := ParseUnsigned(s)
	if !ok {
		return 0, Malformed("Invalid stake amount format")
	}
	return Amount(n), nil
}

func (b BetID) String() string      { return strconv.FormatUint(uint64(b), 10) }
func (c CustomerID) String() string { return strconv.FormatUint(uint64(c), 10) }
func (a Amount) String() string     { return strconv.FormatUint(uint64(a), 10) }
