package notifier

import (
	"fmt"
	"io"
	"sync"
)

// Notifier delivers rendered text somewhere a person will read it.
type Notifier interface {
	Send(text string) error
}

// WriterNotifier writes messages to an io.Writer, one after another.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Send writes text to the underlying writer.
func (n *WriterNotifier) Send(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := io.WriteString(n.w, text); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
