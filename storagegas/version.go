// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package storagegas

// Version is a gas feature version. Versions only ever increase and the
// behavior bound to a released version never changes, so replaying a
// historical transaction under its original version reproduces its original
// cost exactly.
type Version uint64

// LatestVersion is the newest gas feature version this codebase knows about.
const LatestVersion Version = 10

// HasFreeWriteQuota reports whether write sizes are charged net of a free
// byte quota, keyed on the key's abstract size rather than its canonical
// encoded length.
func (v Version) HasFreeWriteQuota() bool {
	return v >= 3
}

// HasConfigurableLimits reports whether change-set caps and the free write
// quota are read from GasParameters rather than pinned constants.
func (v Version) HasConfigurableLimits() bool {
	return v >= 5
}
