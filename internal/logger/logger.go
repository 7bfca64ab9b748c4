package logger

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Service   string         `json:"service"`
	Action    string         `json:"action"`
	Message   string         `json:"message"`
	Hostname  string         `json:"hostname"`
	RequestID string         `json:"request_id,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
	Error     *ErrorEntry    `json:"error,omitempty"`
}

type ErrorEntry struct {
	Msg string `json:"msg"`
}

type Logger struct {
	service  string
	hostname string
	out      io.Writer
}

func New(service string) *Logger {
	hostname, _ := os.Hostname()
	return &Logger{service: service, hostname: hostname, out: os.Stdout}
}

// NewWithWriter is used by tests to capture output.
func NewWithWriter(service string, out io.Writer) *Logger {
	hostname, _ := os.Hostname()
	return &Logger{service: service, hostname: hostname, out: out}
}

func (l *Logger) log(level, requestID, action, message string, fields map[string]any, err error) {
	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Service:   l.service,
		Action:    action,
		Message:   message,
		Hostname:  l.hostname,
		RequestID: requestID,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = &ErrorEntry{Msg: err.Error()}
	}
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Info(requestID, action, message string, fields map[string]any) {
	l.log("INFO", requestID, action, message, fields, nil)
}

func (l *Logger) Debug(requestID, action, message string, fields map[string]any) {
	l.log("DEBUG", requestID, action, message, fields, nil)
}

func (l *Logger) Error(requestID, action, message string, err error, fields map[string]any) {
	l.log("ERROR", requestID, action, message, fields, err)
}
