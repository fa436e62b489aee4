// Package cli 實作互動式終端對話
//
// 對話流程讀寫注入的 Reader / Writer，測試可用 bytes.Buffer 駆動。
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTooManyTries 重試次數用盡
var ErrTooManyTries = errors.New("too many tries")

// Prompter 終端問答器
//
// 職責：印出問題、讀取一行回覆、交給 parser 解析；
// 解析失敗時印出錯誤訊息並重問。
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter 創建問答器
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// PromptOptions 問答選項
type PromptOptions struct {
	// HideInputArea 不印 ">>>" 輸入提示（「按 enter 繼續」類的問題）
	HideInputArea bool

	// MaxTries 最多重試次數（0 表示不限）
	MaxTries int
}

// readLine 讀取一行回覆（去尾端換行）
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt 問一個問題並以 parser 解析回覆
//
// 解析失敗時印出錯誤訊息重問；輸入流結束（EOF）時返回錯誤。
func Prompt[T any](p *Prompter, question string, parse func(string) (T, error), options ...PromptOptions) (T, error) {
	var opts PromptOptions
	if len(options) > 0 {
		opts = options[0]
	}

	promptText := question
	if !opts.HideInputArea {
		promptText += "\n>>>"
	}

	var zero T
	tries := 0
	for {
		fmt.Fprint(p.out, promptText)
		reply, err := p.readLine()
		if err != nil {
			return zero, err
		}

		result, err := parse(reply)
		if err == nil {
			fmt.Fprintln(p.out)
			return result, nil
		}

		fmt.Fprintf(p.out, "%s\n\n", err.Error())
		tries++
		if opts.MaxTries > 0 && tries >= opts.MaxTries {
			return zero, ErrTooManyTries
		}
	}
}

// WaitForEnter 等使用者按 enter
func (p *Prompter) WaitForEnter(question string) error {
	_, err := Prompt(p, question, func(reply string) (string, error) {
		return reply, nil
	}, PromptOptions{HideInputArea: true})
	return err
}

// PickOption 印出編號選單並要求選一項，返回 0-based 索引
func PickOption(p *Prompter, question string, options []string) (int, error) {
	for i, option := range options {
		fmt.Fprintf(p.out, "%d: %s\n", i+1, option)
	}
	fmt.Fprintln(p.out)

	picked, err := Prompt(p, question, ParseNumberInRange(1, len(options)))
	if err != nil {
		return 0, err
	}
	return picked - 1, nil
}
