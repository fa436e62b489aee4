// Package logger 建構結構化 logger（zerolog）
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New 創建 console 輸出的 logger
//
// level 解析失敗時回退為 warn：互動式 CLI 的預設是安靜的，
// 對話輸出不該被日誌淹沒。
func New(level string, out io.Writer) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(parsed)
}
