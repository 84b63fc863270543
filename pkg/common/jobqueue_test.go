package common

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	mutex    sync.Mutex
	messages []string
}

func (r *recordingLogger) Log(message string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.messages = append(r.messages, message)
}

func TestJobQueueRunsAllJobsBeforeStop(t *testing.T) {
	logger := &recordingLogger{}
	queue := NewJobQueue(3, logger)
	var count atomic.Int32
	for i := 0; i < 50; i++ {
		queue.Enqueue(func() error {
			count.Add(1)
			return nil
		})
	}
	queue.Stop()

	assert.EqualValues(t, 50, count.Load())
	assert.Empty(t, logger.messages)
}

func TestJobQueueLogsFailedJobs(t *testing.T) {
	logger := &recordingLogger{}
	queue := NewJobQueue(0, logger)
	queue.Enqueue(func() error {
		return errors.New("boom")
	})
	queue.Stop()
	queue.Stop()

	assert.Equal(t, []string{"failed to process a job: boom"}, logger.messages)
}
