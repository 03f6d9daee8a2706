package sbbf

import (
	"fmt"
	"math"

	"github.com/rag-nar1/abloom/filter"
)

const (
	minBitsPerElement = 8.0

	searchLo        = 0.5
	searchHi        = 300.0
	searchTolerance = 1e-6

	poissonTerms   = 500
	poissonEpsilon = 1e-15
)

// maxBlocks keeps block_count*BlockWords addressable as an int slice length.
const maxBlocks = math.MaxInt / BlockBytes

// FalsePositiveRate is the modelled false-positive rate of a filter holding
// bitsPerElement bits per inserted element.
//
// The number of elements hashed into one block is Poisson with mean
// 512/bitsPerElement. A block holding i elements has each word bit set with
// probability 1-(63/64)^i, and a query must hit all 8 words.
func FalsePositiveRate(bitsPerElement float64) float64 {
	if bitsPerElement <= 0 {
		return 1.0
	}

	lambda := BlockBits / bitsPerElement
	pmf := math.Exp(-lambda)
	fpr := 0.0
	for i := 0; i < poissonTerms; i++ {
		if i > 0 {
			pmf *= lambda / float64(i)
		}
		pBitSet := 1.0 - math.Pow(63.0/64.0, float64(i))
		fpr += pmf * math.Pow(pBitSet, BlockWords)

		if pmf < poissonEpsilon && float64(i) > lambda {
			break
		}
	}
	return fpr
}

// BitsPerElement inverts FalsePositiveRate by bisection.
func BitsPerElement(fpRate float64) float64 {
	lo, hi := searchLo, searchHi
	for hi-lo > searchTolerance {
		mid := (lo + hi) / 2
		if FalsePositiveRate(mid) > fpRate {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func validate(capacity uint64, fpRate float64) error {
	if capacity == 0 {
		return filter.ErrZeroCapacity
	}
	// written to also reject NaN
	if !(fpRate > 0 && fpRate < 1) {
		return fmt.Errorf("%w, got %v", filter.ErrFPRateRange, fpRate)
	}
	return nil
}

// Calibrate returns the number of blocks needed to hold capacity elements at
// the target false-positive rate. No power-of-two rounding is applied.
func Calibrate(capacity uint64, fpRate float64) (uint64, error) {
	if err := validate(capacity, fpRate); err != nil {
		return 0, err
	}

	bpe := math.Max(BitsPerElement(fpRate), minBitsPerElement)
	blocks := math.Ceil(float64(capacity) * bpe / BlockBits)
	if blocks > maxBlocks {
		return 0, fmt.Errorf("%w: %v blocks for capacity %d", filter.ErrResource, blocks, capacity)
	}
	return max(uint64(blocks), 1), nil
}
