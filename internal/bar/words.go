package bar

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	wordOnes  = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	wordTeens = []string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	wordTens  = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

// numberToWords converts 0 < n < 1000 to spoken English.
func numberToWords(n int) string {
	switch {
	case n <= 0:
		return ""
	case n < 10:
		return wordOnes[n]
	case n < 20:
		return wordTeens[n-10]
	case n < 100:
		if n%10 > 0 {
			return wordTens[n/10] + "-" + wordOnes[n%10]
		}
		return wordTens[n/10]
	default:
		hundred := wordOnes[n/100] + " hundred"
		remainder := n % 100
		if remainder == 0 {
			return hundred
		}
		return hundred + " and " + numberToWords(remainder)
	}
}

// DollarsToWords renders a currency amount as full spoken English, e.g.
// 12.50 becomes "twelve dollars and fifty cents". Voice output depends on
// this; digits read aloud sound like a robot.
func DollarsToWords(amount decimal.Decimal) string {
	amount = round2(amount)
	if amount.IsZero() {
		return "zero dollars"
	}

	dollars := int(amount.IntPart())
	cents := int(amount.Sub(amount.Floor()).Mul(decimal.NewFromInt(100)).Round(0).IntPart())

	var parts []string
	if dollars > 0 {
		var dollarWords []string
		if dollars >= 1000 {
			dollarWords = append(dollarWords, numberToWords(dollars/1000)+" thousand")
			dollars %= 1000
		}
		if dollars > 0 {
			dollarWords = append(dollarWords, numberToWords(dollars))
		}
		phrase := strings.Join(dollarWords, " ")
		if phrase == "one" {
			parts = append(parts, "one dollar")
		} else {
			parts = append(parts, phrase+" dollars")
		}
	}

	if cents > 0 {
		centWords := numberToWords(cents) + " cents"
		if cents == 1 {
			centWords = "one cent"
		}
		if len(parts) > 0 {
			parts = append(parts, "and "+centWords)
		} else {
			parts = append(parts, centWords)
		}
	}

	if len(parts) == 0 {
		return "zero dollars"
	}
	return strings.Join(parts, " ")
}
