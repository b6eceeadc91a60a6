package hashing_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/variantkit-go/internal/hashing"
	"github.com/lgbarn/variantkit-go/internal/testutil"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := hashing.NewThreadSafeDuplicateDetector(0)
	pos := testutil.MustPosition(t, "chess", "")
	sig := hashing.NewSignature(pos.Key(), pos.FEN())

	const numWorkers = 10
	const perWorker = 10

	var firsts int64
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if !detector.CheckAndAdd(sig) {
					atomic.AddInt64(&firsts, 1)
				}
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, firsts, int64(1), "exactly one caller sees a new position")
	testutil.AssertEqual(t, detector.Stats(), hashing.Stats{Unique: 1, Duplicates: numWorkers*perWorker - 1})
	testutil.AssertTrue(t, detector.Contains(sig))
}

func TestThreadSafeDuplicateDetector_DistinctPositions(t *testing.T) {
	detector := hashing.NewThreadSafeDuplicateDetector(0)
	pos := testutil.MustPosition(t, "xiangqi", "")

	moves := pos.LegalMoves()
	sigs := make([]hashing.PositionSignature, 0, len(moves))
	for _, m := range moves {
		pos.DoMove(m)
		sigs = append(sigs, hashing.NewSignature(pos.Key(), pos.FEN()))
		pos.UndoMove()
	}

	var wg sync.WaitGroup
	for _, sig := range sigs {
		wg.Add(1)
		go func(sig hashing.PositionSignature) {
			defer wg.Done()
			detector.CheckAndAdd(sig)
		}(sig)
	}
	wg.Wait()

	testutil.AssertEqual(t, detector.Stats(), hashing.Stats{Unique: len(sigs)})
	for _, sig := range sigs {
		testutil.AssertTrue(t, detector.Contains(sig))
	}
}

func TestThreadSafeDuplicateDetector_Capacity(t *testing.T) {
	detector := hashing.NewThreadSafeDuplicateDetector(2)
	for i := 0; i < 4; i++ {
		detector.CheckAndAdd(hashing.NewSignature(uint64(i), ""))
	}
	testutil.AssertEqual(t, detector.Stats(), hashing.Stats{Unique: 2, Full: true})
	testutil.AssertFalse(t, detector.Contains(hashing.NewSignature(3, "")), "signatures past capacity are not stored")

	detector.Reset()
	testutil.AssertEqual(t, detector.Stats(), hashing.Stats{})
}
