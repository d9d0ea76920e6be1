//go:build release

package log

import "log"

func init() {
	dir, err := Dir()
	if err != nil {
		log.Fatalf("Failed to locate log directory: %v", err)
	}
	w, err := newRotatingWriter(dir)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	log.SetOutput(w)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// Debug is a no-op in release builds.
func Debug(v ...interface{}) {}

// Debugf is a no-op in release builds.
func Debugf(format string, v ...interface{}) {}
