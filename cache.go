//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package rastergrbl

// CachedEngravable keeps recently read rows
type CachedEngravable struct {
	Engravable

	cacheDepth int
	rowCache   map[int][]uint8
}

func NewCachedEngravable(engravable Engravable, cacheDepth int) (ce *CachedEngravable) {
	ce = &CachedEngravable{
		Engravable: engravable,
		rowCache:   make(map[int][]uint8, cacheDepth),
		cacheDepth: cacheDepth,
	}
	return
}

func (ce *CachedEngravable) Row(y int, row []uint8) (err error) {
	cached, found := ce.rowCache[y]

	if !found {
		width := ce.Engravable.Properties().Size.X

		cached = make([]uint8, width)
		err = ce.Engravable.Row(y, cached)
		if err != nil {
			return
		}

		if ce.cacheDepth <= 0 {
			copy(row, cached)
			return
		}

		if len(ce.rowCache) >= ce.cacheDepth {
			for key := range ce.rowCache {
				delete(ce.rowCache, key)
				break
			}
		}

		ce.rowCache[y] = cached
	}

	copy(row, cached)

	return
}
