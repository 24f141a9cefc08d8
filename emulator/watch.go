package emulator

// Set of pinned memory word addresses. The state viewer redisplays
// watched words every frame through Memory.Read, so out of range pins
// show up as absent instead of faulting
type WatchList struct {
	Addrs []uint32 // Watched word addresses, no duplicates
}

func NewWatchList() *WatchList {
	return &WatchList{}
}

// Pins `addr`. Does nothing if it is already watched
func (wl *WatchList) Add(addr uint32) {
	// check if that address is already watched
	for _, watched := range wl.Addrs {
		if watched == addr {
			return
		}
	}
	wl.Addrs = append(wl.Addrs, addr)
}

// Unpins `addr`. Does nothing if it isn't watched
func (wl *WatchList) Remove(addr uint32) {
	for idx, watched := range wl.Addrs {
		if watched == addr {
			// remove this watch
			wl.Addrs = append(wl.Addrs[:idx], wl.Addrs[idx+1:]...)
			return
		}
	}
}

// Returns whether `addr` is watched
func (wl *WatchList) Has(addr uint32) bool {
	for _, watched := range wl.Addrs {
		if watched == addr {
			return true
		}
	}
	return false
}
