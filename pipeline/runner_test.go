package pipeline

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPairJobs_PreservesSubmissionOrder(t *testing.T) {
	jobs := make([]Pair, 8)
	for i := range jobs {
		jobs[i] = Pair{Col1: fmt.Sprintf("c%d", i), Col2: "x"}
	}

	// Early jobs sleep longer so completion order inverts submission
	// order.
	results, err := runPairJobs(4, jobs, func(job Pair) ([][]float32, error) {
		var idx int
		fmt.Sscanf(job.Col1, "c%d", &idx)
		time.Sleep(time.Duration(len(jobs)-idx) * 5 * time.Millisecond)
		return [][]float32{{float32(idx)}}, nil
	})
	require.NoError(t, err)

	require.Len(t, results, len(jobs))
	for i, latent := range results {
		assert.Equal(t, float32(i), latent[0][0], "slot %d", i)
	}
}

func TestRunPairJobs_ErrorAbortsBatch(t *testing.T) {
	boom := errors.New("boom")
	jobs := []Pair{{"a", "b"}, {"b", "a"}, {"a", "c"}}

	results, err := runPairJobs(2, jobs, func(job Pair) ([][]float32, error) {
		if job.Col1 == "b" {
			return nil, boom
		}
		return [][]float32{{1}}, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "pair b-a")
	assert.Nil(t, results, "no partial results on failure")
}

func TestRunPairJobs_BoundedConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	jobs := make([]Pair, 12)
	for i := range jobs {
		jobs[i] = Pair{Col1: "a", Col2: "b"}
	}

	_, err := runPairJobs(4, jobs, func(Pair) ([][]float32, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		return nil, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(4))
}
