package jvalue

import (
	"cmp"
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/apd/v2"

	"github.com/oarkflow/jvalue/number"
)

// Equal reports whether a and b hold the same JSON data. Numbers compare by
// value, strings after unescaping, and containers element by element in
// order, so objects with the same members in a different order differ.
func Equal(a, b Value) bool {
	return a.Equal(b)
}

func (v Value) Equal(o Value) bool {
	k := v.Kind()
	if k != o.Kind() {
		return false
	}
	switch k {
	case KindNull:
		return true
	case KindBoolean:
		return v.isTrue() == o.isTrue()
	case KindNumber:
		c, ok := compareNumbers(v.numberText(), o.numberText())
		return ok && c == 0
	case KindString:
		a, b := v.Chars(), o.Chars()
		for {
			an, bn := a.Next(), b.Next()
			if !an || !bn {
				return an == bn
			}
			if a.Rune() != b.Rune() {
				return false
			}
		}
	case KindArray:
		a, b := v.Elements(), o.Elements()
		for {
			an, bn := a.Next(), b.Next()
			if !an || !bn {
				return an == bn && a.Err() == nil && b.Err() == nil
			}
			if !a.Value().Equal(b.Value()) {
				return false
			}
		}
	case KindObject:
		a, b := v.Members(), o.Members()
		for {
			an, bn := a.Next(), b.Next()
			if !an || !bn {
				return an == bn && a.Err() == nil && b.Err() == nil
			}
			if !a.Key().Equal(b.Key()) || !a.Value().Equal(b.Value()) {
				return false
			}
		}
	}
	return false
}

// Compare orders a and b, returning -1, 0 or +1. Values of different kinds
// order by kind: null < boolean < number < string < array < object.
//
// Strings, arrays and objects are compared item by item and the first
// difference decides. When one side runs out first the result is 0, so a
// proper prefix compares equal to the longer sequence.
func Compare(a, b Value) int {
	return a.Compare(b)
}

func (v Value) Compare(o Value) int {
	k := v.Kind()
	if ko := o.Kind(); k != ko {
		return cmp.Compare(k, ko)
	}
	switch k {
	case KindBoolean:
		return cmp.Compare(boolRank(v.isTrue()), boolRank(o.isTrue()))
	case KindNumber:
		if c, ok := compareNumbers(v.numberText(), o.numberText()); ok {
			return c
		}
		return cmp.Compare(number.ParseFloat64(v.numberText(), math.NaN()), number.ParseFloat64(o.numberText(), math.NaN()))
	case KindString:
		a, b := v.Chars(), o.Chars()
		for a.Next() && b.Next() {
			if c := cmp.Compare(a.Rune(), b.Rune()); c != 0 {
				return c
			}
		}
	case KindArray:
		a, b := v.Elements(), o.Elements()
		for a.Next() && b.Next() {
			if c := a.Value().Compare(b.Value()); c != 0 {
				return c
			}
		}
	case KindObject:
		a, b := v.Members(), o.Members()
		for a.Next() && b.Next() {
			if c := a.Key().Compare(b.Key()); c != 0 {
				return c
			}
			if c := a.Value().Compare(b.Value()); c != 0 {
				return c
			}
		}
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compareNumbers compares two number tokens exactly. It fails when either
// token is not a well formed number.
func compareNumbers(a, b string) (int, bool) {
	if number.IsInteger(a) && number.IsInteger(b) {
		x, aok := number.Int64(a)
		y, bok := number.Int64(b)
		if aok && bok {
			return cmp.Compare(x, y), true
		}
	}
	x, _, err := apd.NewFromString(a)
	if err != nil {
		return 0, false
	}
	y, _, err := apd.NewFromString(b)
	if err != nil {
		return 0, false
	}
	return x.Cmp(y), true
}

const (
	hashNull   uint64 = 0
	hashTrue   uint64 = 0x392307A6
	hashFalse  uint64 = 0x63D95114
	seedNumber uint64 = 0x4F1BBCDD
	seedString uint64 = 0x219FFA9C
	seedArray  uint64 = 0x12D398BA
	seedObject uint64 = 0x50638734
)

// Hash returns a hash consistent with Equal: equal values hash equal,
// whatever their spelling.
func (v Value) Hash() uint64 {
	switch v.Kind() {
	case KindBoolean:
		if v.isTrue() {
			return hashTrue
		}
		return hashFalse
	case KindNumber:
		h := newHasher(seedNumber)
		f, err := strconv.ParseFloat(v.numberText(), 64)
		if err != nil && !math.IsInf(f, 0) {
			return h.sum()
		}
		if f == 0 {
			f = 0 // -0
		}
		h.word(math.Float64bits(f))
		return h.sum()
	case KindString:
		h := newHasher(seedString)
		it := v.Chars()
		for it.Next() {
			h.word(uint64(it.Rune()))
		}
		return h.sum()
	case KindArray:
		h := newHasher(seedArray)
		it := v.Elements()
		for it.Next() {
			h.word(it.Value().Hash())
		}
		return h.sum()
	case KindObject:
		h := newHasher(seedObject)
		it := v.Members()
		for it.Next() {
			h.word(it.Key().Hash())
			h.word(it.Value().Hash())
		}
		return h.sum()
	}
	return hashNull
}

// hasher folds 64-bit words into a running xxhash over a stack buffer, so
// hashing a tree does not allocate.
type hasher struct {
	state uint64
}

func newHasher(seed uint64) hasher {
	var h hasher
	h.word(seed)
	return h
}

func (h *hasher) word(x uint64) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], h.state)
	binary.LittleEndian.PutUint64(buf[8:], x)
	h.state = xxhash.Sum64(buf[:])
}

func (h *hasher) sum() uint64 {
	return h.state
}
