package streams

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionIndex_StableAndInRange(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 7, 64} {
		for i := 0; i < 100; i++ {
			key := fmt.Sprintf("job-%d", i)
			idx := partitionIndex(key, n)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, n)
			assert.Equal(t, idx, partitionIndex(key, n), "same key must map to the same partition")
		}
	}
}

func TestNewPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](0, -1)
	assert.Equal(t, defaultNumPartitions, queue.PartitionCount())
	assert.Equal(t, defaultBuffer, cap(queue.partitions[0]))

	queue = NewPartitionedQueue[int](4, 8)
	assert.Equal(t, 4, queue.PartitionCount())
	assert.Equal(t, 8, cap(queue.partitions[3]))
}

func TestPartitionedQueue_PublishKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](3, 10)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Publish(ctx, "same-key", i))
	}

	ch := queue.partitions[partitionIndex("same-key", 3)]
	require.Len(t, ch, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, <-ch)
	}
}

func TestPartitionedQueue_PublishFullPartitionHonoursContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 1)
	require.NoError(t, queue.Publish(context.Background(), "k", 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := queue.Publish(ctx, "k", 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPartitionedQueue_Close(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 1)
	queue.Close()
	queue.Close()

	err := queue.Publish(context.Background(), "k", 1)
	assert.ErrorIs(t, err, ErrQueueClosed)
	assert.Len(t, queue.partitions[0], 0)
}

func TestPartitionedQueue_CloseUnblocksPublisher(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 0)
	errCh := make(chan error, 1)
	go func() {
		errCh <- queue.Publish(context.Background(), "k", 1)
	}()

	time.Sleep(10 * time.Millisecond)
	queue.Close()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrQueueClosed)
	case <-time.After(time.Second):
		t.Fatal("publisher still blocked after Close")
	}
}
