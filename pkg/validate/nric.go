package validate

import (
	"regexp"

	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

var nricShape = regexp.MustCompile(`^[STFG]\d{7}[A-Z]$`)

// Checksum tables for national identity numbers. The seven digits are
// weighted, T/G prefixes add a constant offset, and the sum modulo 11
// selects the expected trailing letter from a prefix-dependent
// alphabet.
var (
	nricWeights   = [7]int{2, 7, 6, 5, 4, 3, 2}
	nricLettersST = "JZIHGFEDCBA"
	nricLettersFG = "XWUTRQPNMLK"
)

func nricValidator() step {
	return func(resp field.Response) mo.Result[field.Response] {
		if !nricShape.MatchString(resp.Answer) {
			return rejected(resp, CodeFormatInvalid, "answer is not a valid identity number format")
		}
		if !nricChecksumValid(resp.Answer) {
			return rejected(resp, CodeFormatInvalid, "identity number checksum does not match")
		}
		return mo.Ok(resp)
	}
}

func nricChecksumValid(answer string) bool {
	sum := 0
	for i, w := range nricWeights {
		sum += int(answer[i+1]-'0') * w
	}
	prefix := answer[0]
	if prefix == 'T' || prefix == 'G' {
		sum += 4
	}
	letters := nricLettersST
	if prefix == 'F' || prefix == 'G' {
		letters = nricLettersFG
	}
	return answer[8] == letters[sum%11]
}
