/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package model

import (
	"golang.org/x/exp/rand"
)

// SeedSequence hands out stream seeds in a fixed order derived from one
// top-level seed. Two sequences built from the same seed and consumed in
// the same order produce the same seeds.
type SeedSequence struct {
	gen *rand.Rand
}

func NewSeedSequence(seed int64) *SeedSequence {
	return &SeedSequence{
		gen: rand.New(rand.NewSource(uint64(seed))),
	}
}

func (s *SeedSequence) Next() uint64 {
	return s.gen.Uint64()
}

func newStream(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
