// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package storagegas

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Danialkaren/aptos-core/gas"
	"github.com/Danialkaren/aptos-core/state"
)

// TestChargeableSizeProperties checks the quota arithmetic over the whole
// realistic input range rather than hand-picked points.
func TestChargeableSizeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("quota subtraction saturates at zero", prop.ForAll(
		func(keySize, payloadLen, quota uint64) string {
			params := testGasParameters()
			params.FreeWriteBytesQuota = gas.NumBytes(quota)
			p := newPricingV2(5, testSchedule(), params)

			key := testKey{size: int(keySize)}
			got := p.writeOpSize(key, make([]byte, payloadLen))

			if keySize+payloadLen <= quota {
				if got != 0 {
					return fmt.Sprintf("expected zero chargeable size, got %d", got)
				}
				return ""
			}
			if want := gas.NumBytes(keySize + payloadLen - quota); got != want {
				return fmt.Sprintf("expected chargeable size %d, got %d", want, got)
			}
			return ""
		},
		gen.UInt64Range(0, 4096),
		gen.UInt64Range(0, 4096),
		gen.UInt64Range(0, 8192),
	))

	properties.Property("creation cost never drops below the per-item fee", prop.ForAll(
		func(keySize, payloadLen uint64) bool {
			p := newPricingV2(5, testSchedule(), testGasParameters())
			cost := p.writeOpGas(
				testKey{size: int(keySize)},
				state.NewCreation(make([]byte, payloadLen)),
			)
			return cost >= p.perItemCreate.Cost(1)
		},
		gen.UInt64Range(0, 4096),
		gen.UInt64Range(0, 4096),
	))

	properties.TestingRun(t)
}

func TestReadGasProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("read cost is monotonic in bytes loaded", prop.ForAll(
		func(version uint64, smaller, delta uint64) bool {
			pricings := []Pricing{
				{v1: newPricingV1(testGasParameters())},
				{v2: newPricingV2(Version(version), testSchedule(), testGasParameters())},
			}
			larger := smaller + delta
			for _, p := range pricings {
				if p.CalculateReadGas(gas.NumBytes(smaller), true) >
					p.CalculateReadGas(gas.NumBytes(larger), true) {
					return false
				}
			}
			return true
		},
		gen.UInt64Range(1, uint64(LatestVersion)),
		gen.UInt64Range(0, 1<<30),
		gen.UInt64Range(0, 1<<30),
	))

	properties.TestingRun(t)
}

func TestLimitsProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("caps below version 3 are unaffected by raw parameters", prop.ForAll(
		func(version, capPerOp, capTotal uint64) bool {
			params := &GasParameters{
				MaxBytesPerWriteOp:                gas.NumBytes(capPerOp),
				MaxBytesAllWriteOpsPerTransaction: gas.NumBytes(capTotal),
				MaxBytesPerEvent:                  gas.NumBytes(capPerOp),
				MaxBytesAllEventsPerTransaction:   gas.NumBytes(capTotal),
			}
			limits := NewChangeSetLimits(Version(version), params)
			return limits == UnlimitedLimitsAt(Version(version))
		},
		gen.UInt64Range(0, 2),
		gen.UInt64Range(0, 100),
		gen.UInt64Range(0, 100),
	))

	properties.Property("adding a deletion never changes the outcome", prop.ForAll(
		func(payloadLen, keySize uint64) bool {
			limits := newChangeSetLimits(5, 512, 1024, 512, 1024)

			writes := []state.Write{{
				Key: state.RawKey{0x01},
				Op:  state.NewModification(make([]byte, payloadLen)),
			}}
			base := limits.CheckChangeSet(state.NewChangeSet(writes, nil))

			withDeletion := append([]state.Write{{
				Key: state.RawKey(make([]byte, keySize)),
				Op:  state.NewDeletion(),
			}}, writes...)
			got := limits.CheckChangeSet(state.NewChangeSet(withDeletion, nil))

			return (base == nil) == (got == nil)
		},
		gen.UInt64Range(0, 2048),
		gen.UInt64Range(1, 4096),
	))

	properties.TestingRun(t)
}
