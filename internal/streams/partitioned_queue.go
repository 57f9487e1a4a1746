package streams

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"sync"
)

var ErrQueueClosed = errors.New("queue closed")

// PartitionedQueue routes messages to a fixed set of buffered partitions by key.
// Messages sharing a key always land in the same partition, so a consumer that runs
// one worker per partition processes them in publish order.
type PartitionedQueue[T any] struct {
	partitions []chan T

	closeOnce sync.Once
	closed    chan struct{}
}

const (
	defaultNumPartitions = 1
	defaultBuffer        = 64
)

func NewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = defaultNumPartitions
	}
	if buffer < 0 {
		buffer = defaultBuffer
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels, closed: make(chan struct{})}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks while the target partition is full, until ctx is done or the queue is closed.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	select {
	case <-queue.closed:
		return ErrQueueClosed
	default:
	}

	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-queue.closed:
		return ErrQueueClosed
	}
}

// Close stops accepting messages. Partitions stay open so workers are never woken
// by a closed channel; they stop through their own context or stop signal.
func (queue *PartitionedQueue[T]) Close() {
	queue.closeOnce.Do(func() { close(queue.closed) })
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
