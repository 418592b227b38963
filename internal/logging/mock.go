package logging

import "sync"

// MockLogger implements Logger for testing. It records every message so tests
// can assert on what was logged. Loggers derived via WithError or WithField
// record into the same entry list.
type MockLogger struct {
	mu      sync.Mutex
	Entries []MockEntry
}

// MockEntry is one recorded log call.
type MockEntry struct {
	Level  string
	Msg    string
	Fields []Field
	Err    error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, MockEntry{Level: level, Msg: msg, Fields: fields, Err: err})
}

// Debug records a debug-level message
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields, nil) }

// Info records an info-level message
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields, nil) }

// Warn records a warning-level message
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields, nil) }

// Error records an error-level message
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields, nil) }

// Fatal records a fatal-level message without exiting, so tests can assert on it
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("fatal", msg, fields, nil) }

// WithError returns a derived logger that attaches err to subsequent entries
func (m *MockLogger) WithError(err error) Logger {
	return &mockChild{root: m, err: err}
}

// WithField returns a derived logger that attaches the field to subsequent entries
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &mockChild{root: m, fields: []Field{{Key: key, Value: value}}}
}

// MessagesAt returns the messages recorded at the given level.
func (m *MockLogger) MessagesAt(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var msgs []string
	for _, e := range m.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// mockChild is a derived mock logger carrying accumulated context.
type mockChild struct {
	root   *MockLogger
	fields []Field
	err    error
}

func (c *mockChild) record(level, msg string, fields []Field) {
	all := append(append([]Field{}, c.fields...), fields...)
	c.root.record(level, msg, all, c.err)
}

func (c *mockChild) Debug(msg string, fields ...Field) { c.record("debug", msg, fields) }
func (c *mockChild) Info(msg string, fields ...Field)  { c.record("info", msg, fields) }
func (c *mockChild) Warn(msg string, fields ...Field)  { c.record("warn", msg, fields) }
func (c *mockChild) Error(msg string, fields ...Field) { c.record("error", msg, fields) }
func (c *mockChild) Fatal(msg string, fields ...Field) { c.record("fatal", msg, fields) }

func (c *mockChild) WithError(err error) Logger {
	return &mockChild{root: c.root, fields: c.fields, err: err}
}

func (c *mockChild) WithField(key string, value interface{}) Logger {
	return &mockChild{root: c.root, fields: append(append([]Field{}, c.fields...), Field{Key: key, Value: value}), err: c.err}
}
