package logging

import "sync"

var (
	globalMu     sync.RWMutex
	globalLogger = NewNoop()
)

// Global returns the process-wide logger. It discards everything until
// InitGlobal is called.
func Global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// InitGlobal replaces the process-wide logger with one built from config,
// closing the previous one.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}

	globalMu.Lock()
	previous := globalLogger
	globalLogger = l
	globalMu.Unlock()

	return previous.Close()
}

// CloseGlobal closes the process-wide logger and goes back to discarding.
func CloseGlobal() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	err := globalLogger.Close()
	globalLogger = NewNoop()
	return err
}

// Debug logs a debug message with the process-wide logger.
func Debug(msg string, args ...any) {
	Global().Debug(msg, args...)
}
