// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package pipeline

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// runPairJobs executes fn once per pair on a fixed-size worker pool and
// returns the latent matrices indexed by submission order, independent
// of completion order. Jobs never communicate; the only shared state is
// the result slot each job owns. The first job error, scanned in
// submission order, aborts the whole batch: no partial results are
// returned. Jobs are never cancelled mid-flight and there is no timeout.
func runPairJobs(workers int, jobs []Pair, fn func(Pair) ([][]float32, error)) ([][][]float32, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([][][]float32, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = fn(job)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for i, jobErr := range errs {
		if jobErr != nil {
			return nil, fmt.Errorf("pair %s-%s: %w", jobs[i].Col1, jobs[i].Col2, jobErr)
		}
	}
	return results, nil
}
