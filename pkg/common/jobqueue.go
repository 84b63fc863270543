package common

import "sync"

type Job func() error

// JobQueue runs jobs in the background on a fixed number of workers. Jobs are picked up in the order they were
// enqueued, but with more than one worker they may complete out of order.
type JobQueue struct {
	jobsChannel chan Job
	waitGroup   sync.WaitGroup
	stopOnce    sync.Once
	logger      Logger
}

func NewJobQueue(workerCount int, logger Logger) *JobQueue {
	if workerCount < 1 {
		workerCount = 1
	}
	queue := &JobQueue{
		jobsChannel: make(chan Job, 128),
		logger:      logger,
	}
	queue.waitGroup.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go queue.run()
	}
	return queue
}

// Enqueue blocks if the queue is full. Must not be called after Stop.
func (j *JobQueue) Enqueue(job Job) {
	j.jobsChannel <- job
}

// Stop waits until all enqueued jobs are processed and the workers exit.
func (j *JobQueue) Stop() {
	j.stopOnce.Do(func() {
		close(j.jobsChannel)
	})
	j.waitGroup.Wait()
}

func (j *JobQueue) run() {
	defer j.waitGroup.Done()
	for job := range j.jobsChannel {
		err := job()
		if err != nil {
			j.logger.Log("failed to process a job: " + err.Error())
		}
	}
}
