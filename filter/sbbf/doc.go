/*
Package sbbf implements a Split Block Bloom Filter using the Apache Parquet
SBBF bit layout.

# Layout

The filter is an array of 512-bit blocks. Each block is eight 64-bit words,
one cache line:

	block 0: | w0 | w1 | w2 | w3 | w4 | w5 | w6 | w7 |
	block 1: | w0 | w1 | w2 | w3 | w4 | w5 | w6 | w7 |
	...

A 64-bit hash picks one block with its upper 32 bits (modulo the block count,
so any block count is valid) and sets exactly one bit in each of the eight
words with its lower 32 bits, one salt per word. An insert or a query touches
one cache line regardless of the filter size.

# Sizing

The block count is calibrated from the expected number of elements and the
target false-positive rate. Per-block load is modelled as Poisson and the
model is inverted by bisection; see Calibrate.

# Two modes

Filter hashes with a per-process seed and is the fast choice for in-memory
use. SerializableFilter hashes deterministically (XXH64, seed 0, for bytes and
text) and is the only type with Serialize. Both satisfy filter.Filter.

# Wire format (version 1, big-endian)

	+-------------------+  4 bytes  magic "ABLM"
	| version           |  1 byte   (1)
	| capacity          |  8 bytes  u64
	| fp_rate           |  8 bytes  IEEE-754 bits
	| block_count       |  8 bytes  u64
	+-------------------+
	| block words       |  block_count * 8 words, u64 each
	+-------------------+

# Concurrency

Filters do no locking. Concurrent reads are safe while nothing mutates the
filter; mutation needs external synchronization.
*/
package sbbf
