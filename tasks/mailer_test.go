package tasks_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yatube/tasks"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []tasks.Email
}

func (s *recordingSender) Send(email tasks.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, email)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestMailerDeliversEnqueuedMail(t *testing.T) {
	sender := &recordingSender{}
	mailer := tasks.NewMailer(sender)
	go mailer.Run()

	mailer.Enqueue(tasks.Email{To: "alice@example.com", Subject: "hi", Body: "hello"})
	mailer.Enqueue(tasks.Email{To: "bob@example.com", Subject: "hi", Body: "hello"})

	require.Eventually(t, func() bool {
		return sender.count() == 2
	}, time.Second, 10*time.Millisecond)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	require.Equal(t, "alice@example.com", sender.sent[0].To)
	require.Equal(t, "bob@example.com", sender.sent[1].To)
}

func TestEnqueueDoesNotBlockWhenQueueIsFull(t *testing.T) {
	mailer := tasks.NewMailer(&recordingSender{})
	// No worker running: fill the buffer completely, then one more.
	for i := 0; i < tasks.MailChannelBufferSize; i++ {
		mailer.Enqueue(tasks.Email{To: "x@example.com"})
	}

	done := make(chan struct{})
	go func() {
		mailer.Enqueue(tasks.Email{To: "overflow@example.com"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
