package usecase

import (
	"math"
	"strconv"
	"strings"
)

// 小数第2位までの10進表記しか受けない（通貨の最小単位より細かい値は拒否）
const maxMoneyFractionDigits = 2

// ParseMoney は "25.00" のようなテキスト入力をパイサ（最小通貨単位）に変換する。
// 変換できない入力はNaNや0に化けさせず、必ずValidationErrorにする。
func ParseMoney(field, s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, NewValidationError(field, "required")
	}
	if strings.HasPrefix(s, "-") {
		return 0, NewValidationError(field, "must be >= 0")
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" || !isDigits(intPart) {
		return 0, NewValidationError(field, "invalid number")
	}
	if hasFrac {
		if fracPart == "" || !isDigits(fracPart) {
			return 0, NewValidationError(field, "invalid number")
		}
		if len(fracPart) > maxMoneyFractionDigits {
			return 0, NewValidationError(field, "at most 2 decimal places")
		}
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, NewValidationError(field, "invalid number")
	}

	frac := int64(0)
	if hasFrac {
		padded := fracPart + strings.Repeat("0", maxMoneyFractionDigits-len(fracPart))
		frac, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, NewValidationError(field, "invalid number")
		}
	}

	if whole > (math.MaxInt64-frac)/100 {
		return 0, NewValidationError(field, "invalid number")
	}
	return whole*100 + frac, nil
}

// ParseCount は在庫数などの非負整数テキストを変換する。
func ParseCount(field, s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, NewValidationError(field, "required")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewValidationError(field, "invalid number")
	}
	if n < 0 {
		return 0, NewValidationError(field, "must be >= 0")
	}
	return n, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
