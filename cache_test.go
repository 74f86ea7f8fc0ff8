//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

import (
	"testing"
)

type countingEngravable struct {
	*EmptyEngravable
	reads map[int]int
}

func (ce *countingEngravable) Row(y int, row []uint8) (err error) {
	ce.reads[y]++
	return ce.EmptyEngravable.Row(y, row)
}

func TestCachedEngravable(t *testing.T) {
	base := &countingEngravable{
		EmptyEngravable: NewEmptyEngravable(Properties{Size: Size{X: 2, Y: 8}}, 9),
		reads:           map[int]int{},
	}

	cached := NewCachedEngravable(base, 2)

	row := make([]uint8, 2)
	for pass := 0; pass < 3; pass++ {
		if err := cached.Row(4, row); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}

	if base.reads[4] != 1 {
		t.Errorf("expected 1 read of row 4, got %v", base.reads[4])
	}

	if row[0] != 9 || row[1] != 9 {
		t.Errorf("expected [9 9], got %v", row)
	}

	for y := 0; y < 8; y++ {
		cached.Row(y, row)
	}

	if len(cached.rowCache) > 2 {
		t.Errorf("expected at most 2 cached rows, got %v", len(cached.rowCache))
	}
}
