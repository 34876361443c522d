// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package storagegas

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Danialkaren/aptos-core/state"
)

func TestMeteredChecker(t *testing.T) {
	require := require.New(t)

	limits := newChangeSetLimits(5, 4, 4, 4, 4)
	metered, err := NewMeteredChecker("storagegas", prometheus.NewRegistry(), limits)
	require.NoError(err)

	passing := state.NewChangeSet(nil, nil)
	failing := state.NewChangeSet(
		[]state.Write{{Key: state.RawKey{0x01}, Op: state.NewModification(make([]byte, 100))}},
		nil,
	)

	require.NoError(metered.CheckChangeSet(passing))
	require.ErrorIs(metered.CheckChangeSet(failing), ErrStorageWriteLimitReached)
	require.NoError(metered.CheckChangeSet(passing))

	require.Equal(float64(3), testutil.ToFloat64(metered.numChecks))
	require.Equal(float64(1), testutil.ToFloat64(metered.numRejected))
}

func TestMeteredCheckerDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	limits := UnlimitedLimitsAt(LatestVersion)

	_, err := NewMeteredChecker("storagegas", reg, limits)
	require.NoError(err)

	_, err = NewMeteredChecker("storagegas", reg, limits)
	require.Error(err)
}
