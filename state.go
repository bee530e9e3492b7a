package sicar

import (
	"fmt"
	"strings"
)

// State is the two-letter code of a Brazilian federative unit.
type State string

// All 27 federative units covered by the rural property registry.
const (
	AC State = "AC" // Acre
	AL State = "AL" // Alagoas
	AM State = "AM" // Amazonas
	AP State = "AP" // Amapá
	BA State = "BA" // Bahia
	CE State = "CE" // Ceará
	DF State = "DF" // Distrito Federal
	ES State = "ES" // Espírito Santo
	GO State = "GO" // Goiás
	MA State = "MA" // Maranhão
	MG State = "MG" // Minas Gerais
	MS State = "MS" // Mato Grosso do Sul
	MT State = "MT" // Mato Grosso
	PA State = "PA" // Pará
	PB State = "PB" // Paraíba
	PE State = "PE" // Pernambuco
	PI State = "PI" // Piauí
	PR State = "PR" // Paraná
	RJ State = "RJ" // Rio de Janeiro
	RN State = "RN" // Rio Grande do Norte
	RO State = "RO" // Rondônia
	RR State = "RR" // Roraima
	RS State = "RS" // Rio Grande do Sul
	SC State = "SC" // Santa Catarina
	SE State = "SE" // Sergipe
	SP State = "SP" // São Paulo
	TO State = "TO" // Tocantins
)

var allStates = []State{
	AC, AL, AM, AP, BA, CE, DF, ES, GO, MA, MG, MS, MT, PA,
	PB, PE, PI, PR, RJ, RN, RO, RR, RS, SC, SE, SP, TO,
}

// States returns every federative unit in code order.
func States() []State {
	out := make([]State, len(allStates))
	copy(out, allStates)
	return out
}

// ParseState normalizes a state code like "sp" or " PA " into a State.
func ParseState(code string) (State, error) {
	s := State(strings.ToUpper(strings.TrimSpace(code)))
	if !s.valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, code)
	}
	return s, nil
}

func (s State) valid() bool {
	switch s {
	case AC, AL, AM, AP, BA, CE, DF, ES, GO, MA, MG, MS, MT, PA,
		PB, PE, PI, PR, RJ, RN, RO, RR, RS, SC, SE, SP, TO:
		return true
	}
	return false
}
