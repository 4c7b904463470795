package common

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ternarybob/arbor"
)

// crashLogDir is where crash reports are written. Set during startup.
var crashLogDir = "./logs"

// InstallCrashHandler prepares the crash report directory. Call at the
// start of main before any goroutines are spawned.
func InstallCrashHandler(logDir string) {
	if logDir != "" {
		crashLogDir = logDir
	}
	if err := os.MkdirAll(crashLogDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "CRASH: failed to create log directory: %v\n", err)
	}
}

// RecoverWithCrashFile is a deferred recovery for main that writes a
// crash report before exiting.
func RecoverWithCrashFile() {
	if r := recover(); r != nil {
		WriteCrashFile(r, stackTrace())
		os.Exit(1)
	}
}

// WriteCrashFile writes a crash report and returns its path. Falls back
// to stderr when the file cannot be written.
func WriteCrashFile(panicVal interface{}, stack string) string {
	timestamp := time.Now().Format("2006-01-02T15-04-05")
	crashPath := filepath.Join(crashLogDir, fmt.Sprintf("crash-%s.log", timestamp))

	report := fmt.Sprintf(
		"=== CONSILIUM CRASH REPORT ===\nTime: %s\nVersion: %s\n\nPanic: %v\n\n%s\n\nGoroutines: %d\n",
		time.Now().Format(time.RFC3339), GetFullVersion(), panicVal, stack, runtime.NumGoroutine())

	if err := os.WriteFile(crashPath, []byte(report), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "CRASH: failed to write crash file: %v\n%s", err, report)
		return ""
	}

	fmt.Fprintf(os.Stderr, "\n!!! FATAL CRASH - Report saved to: %s !!!\nPanic: %v\n", crashPath, panicVal)
	return crashPath
}

// SafeGo runs fn in a goroutine with panic recovery. Panics are logged
// and written to a crash file but do not take down the service.
func SafeGo(logger arbor.ILogger, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := stackTrace()
				if logger != nil {
					logger.Error().
						Str("goroutine", name).
						Str("panic", fmt.Sprintf("%v", r)).
						Str("stack", stack).
						Msg("Recovered from panic in goroutine")
				}
				WriteCrashFile(r, stack)
			}
		}()

		fn()
	}()
}

func stackTrace() string {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
