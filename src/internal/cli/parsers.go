package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ===========================
// 回覆解析器
// ===========================

// ParseYesOrNo 解析是否回覆（y/yes/yep/yeah/yup、n/no/nope/nah）
func ParseYesOrNo(reply string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "y", "yes", "yep", "yeah", "yup":
		return true, nil
	case "n", "no", "nope", "nah":
		return false, nil
	default:
		return false, errors.New("Invalid reply")
	}
}

// ParseNumber 解析整數回覆
func ParseNumber(reply string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		return 0, errors.New("Invalid number")
	}
	return n, nil
}

// ParseNonEmpty 解析非空字串回覆（使用者 ID 等）
func ParseNonEmpty(reply string) (string, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errors.New("Reply must not be empty")
	}
	return reply, nil
}

// ParseNumberInRange 製作限定範圍的整數解析器（含兩端）
func ParseNumberInRange(min, max int) func(string) (int, error) {
	return func(reply string) (int, error) {
		n, err := ParseNumber(reply)
		if err != nil {
			return 0, err
		}
		if n < min || n > max {
			return 0, fmt.Errorf("Number must be between %d and %d", min, max)
		}
		return n, nil
	}
}
