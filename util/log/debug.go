//go:build !release

package log

import (
	"fmt"
	"log"
)

// Debug logs v with a [DEBUG] prefix.
func Debug(v ...interface{}) {
	log.Output(2, "[DEBUG] "+fmt.Sprint(v...))
}

// Debugf logs the formatted message with a [DEBUG] prefix.
func Debugf(format string, v ...interface{}) {
	log.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
}
