package sbits

// circularAllocator manages a fixed-size region of physical pages as a
// circular log: pages are written in increasing physical order, wrapping
// back to the start of the region once the end is reached, and the
// oldest erase block is reclaimed to make room (spec.md §4.2). Logical
// page ids are monotonically increasing and never reused; physical page
// ids are recycled and therefore must never be compared across a wrap
// without going through this mapping.
type circularAllocator struct {
	firstPhysical PhysicalPageId // first physical page of the region
	numPages      int            // total page-sized slots in the region
	eraseSize     int            // pages per erase block

	firstLogicalId LogicalPageId // logical id of the oldest live page
	nextLogicalId  LogicalPageId // logical id to assign to the next page written

	nextPhysical PhysicalPageId // physical slot the next page will be written to
	erasedEnd    PhysicalPageId // physical slot one past the last erased (reclaimed) block
	wrapped      bool           // true once nextPhysical has wrapped past the region end at least once
}

func newCircularAllocator(startAddr, endAddr int64, pageSize, eraseSizeInPages int) circularAllocator {
	firstPhysical := PhysicalPageId(startAddr / int64(pageSize))
	numPages := int((endAddr - startAddr) / int64(pageSize))
	return circularAllocator{
		firstPhysical:  firstPhysical,
		numPages:       numPages,
		eraseSize:      eraseSizeInPages,
		firstLogicalId: 0,
		nextLogicalId:  0,
		nextPhysical:   firstPhysical,
		erasedEnd:      firstPhysical,
	}
}

// minRegionPages returns the minimum number of pages a region must hold:
// two erase blocks bare minimum (one being written while one is reclaimed),
// four when an index region shares the same reclamation cadence as its
// data region (spec.md §4.2).
func minRegionPages(eraseSizeInPages int, indexed bool) int {
	if indexed {
		return 4 * eraseSizeInPages
	}
	return 2 * eraseSizeInPages
}

// physicalOf maps a logical page id to its current physical slot. The
// caller must only call this for logical ids still resident in the
// region (firstLogicalId <= id < nextLogicalId).
func (a *circularAllocator) physicalOf(id LogicalPageId) PhysicalPageId {
	stepsBack := int(a.nextLogicalId - id)
	slot := ((int(a.nextPhysical-a.firstPhysical)-stepsBack)%a.numPages + a.numPages) % a.numPages
	return a.firstPhysical + PhysicalPageId(slot)
}

// reserve hands out the next logical id and its physical slot, advancing
// the allocator and reclaiming an erase block when the region wraps.
// reclaimed reports whether an erase block's worth of logical ids were
// just retired (the caller must drop any in-memory state keyed by them,
// e.g. the oldest buffered index entries).
func (a *circularAllocator) reserve() (logical LogicalPageId, physical PhysicalPageId, reclaimed bool) {
	// Check for wrap/reclaim BEFORE handing out this call's slot (spec.md
	// §4.2 steps 1-2 precede step 3's assignment): the physical page about
	// to be (re)used is the one whose reclaim this advances past, so the
	// bookkeeping must reflect the state this write is about to create,
	// not the state one write before it.
	if int(a.nextPhysical-a.firstPhysical) >= a.numPages {
		a.nextPhysical = a.firstPhysical
		a.wrapped = true
	}
	if a.wrapped && a.nextPhysical == a.erasedEnd {
		a.erasedEnd += PhysicalPageId(a.eraseSize)
		if int(a.erasedEnd-a.firstPhysical) >= a.numPages {
			a.erasedEnd = a.firstPhysical + PhysicalPageId(int(a.erasedEnd-a.firstPhysical)%a.numPages)
		}
		a.firstLogicalId += LogicalPageId(a.eraseSize)
		reclaimed = true
	}

	logical = a.nextLogicalId
	physical = a.nextPhysical
	a.nextLogicalId++
	a.nextPhysical++
	return logical, physical, reclaimed
}

// physicalAfter returns the physical page id n slots after base, wrapped
// within the region. Index entries within a single index page cover a run
// of consecutively-flushed data pages (spec.md §4.5): their physical ids
// increment by one per entry except where that run straddles the data
// region's own wrap point, which plain PhysicalPageId addition would miss.
func (a *circularAllocator) physicalAfter(base PhysicalPageId, n int) PhysicalPageId {
	rel := ((int(base-a.firstPhysical)+n)%a.numPages + a.numPages) % a.numPages
	return a.firstPhysical + PhysicalPageId(rel)
}

// liveCount is the number of logical pages currently resident in the
// region.
func (a *circularAllocator) liveCount() int {
	return int(a.nextLogicalId - a.firstLogicalId)
}
