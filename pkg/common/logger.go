package common

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"
)

type Logger interface {
	Log(message string)
}

type fileLogger struct {
	mutex      sync.Mutex
	path       string
	fileWriter *bufio.Writer
	failed     bool
}

// NewFileLogger logs to the file specified by `path`. If the file is unavailable, writes to the console.
// Each message is written on its own line, prefixed with a timestamp. Safe for concurrent use.
func NewFileLogger(path string) Logger {
	return &fileLogger{
		path: path,
	}
}

func (f *fileLogger) Log(message string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	line := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), message)
	if !f.fileWriterReady() {
		f.logMessageToConsole(line)
		return
	}
	_, err := f.fileWriter.WriteString(line)
	if err != nil {
		f.logErrorToConsole(err.Error())
		f.logMessageToConsole(line)
		return
	}
	err = f.fileWriter.Flush()
	if err != nil {
		f.logErrorToConsole(err.Error())
	}
}

func (f *fileLogger) logErrorToConsole(message string) {
	fmt.Printf("Error: %s. Logging switched to console.\n", message)
}

func (f *fileLogger) logMessageToConsole(message string) {
	fmt.Print(message)
}

func (f *fileLogger) fileWriterReady() bool {
	if f.fileWriter != nil {
		return true
	}
	if f.failed { // don't retry opening on every message
		return false
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f.failed = true
		f.logErrorToConsole(err.Error())
		return false
	}
	f.fileWriter = bufio.NewWriter(file)
	return true
}

type nopLogger struct{}

// NewNopLogger discards everything. Useful in tests.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Log(string) {}
