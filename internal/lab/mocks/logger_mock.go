package mocks

import (
	"fmt"
	"strings"
	"sync"
)

// MockLogger は出力されたメッセージを記録するロガー
type MockLogger struct {
	mu       sync.Mutex
	Messages []string
}

// NewMockLogger は新しいMockLoggerを作成します
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Printf はメッセージを記録します
func (l *MockLogger) Printf(format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, strings.TrimSuffix(fmt.Sprintf(format, a...), "\n"))
}

// Contains は substr を含むメッセージが記録されているかを返します
func (l *MockLogger) Contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
