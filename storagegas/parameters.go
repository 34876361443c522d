// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storagegas computes the deterministic storage cost of a
// transaction's reads and writes and enforces hard size limits on its
// aggregate effects. Every node must compute identical results for identical
// inputs at the same feature version; all arithmetic is exact and the
// validation order is fixed.
package storagegas

import (
	"go.uber.org/zap"

	"github.com/Danialkaren/aptos-core/utils/logging"
)

// Parameters is the immutable (pricing, limits) pair shared by every
// transaction executing under one configuration epoch. Construction happens
// once per epoch, off the per-transaction hot path; a superseding epoch gets
// a brand-new instance.
type Parameters struct {
	Pricing Pricing
	Limits  ChangeSetLimits
}

// NewParameters resolves the storage gas parameters active at [version].
//
// It returns nil when metering is disabled: at version 0 or when no raw gas
// parameters are known. Callers must treat nil as "zero cost, no limits",
// not as an error.
//
// Pricing family selection is driven by schedule presence alone: an on-chain
// schedule selects quota-tiered pricing, its absence selects flat-rate
// pricing. The feature version only gates behavior within the quota-tiered
// family. These are two independent axes; collapsing them would reprice
// historical transactions on replay.
func NewParameters(
	log logging.Logger,
	version Version,
	params *GasParameters,
	schedule *Schedule,
) *Parameters {
	if version == 0 || params == nil {
		log.Info("storage gas metering disabled",
			zap.Uint64("featureVersion", uint64(version)),
		)
		return nil
	}

	var pricing Pricing
	if schedule != nil {
		pricing = Pricing{v2: newPricingV2(version, schedule, params)}
	} else {
		pricing = Pricing{v1: newPricingV1(params)}
	}

	limits := NewChangeSetLimits(version, params)

	log.Info("activated storage gas parameters",
		zap.Uint64("featureVersion", uint64(version)),
		zap.Bool("quotaTieredPricing", schedule != nil),
	)
	return &Parameters{
		Pricing: pricing,
		Limits:  limits,
	}
}

// FreeAndUnlimited returns parameters that are structurally present but
// economically inert: zero cost, no limits, pinned at LatestVersion. Used
// where execution needs metering wired but not charged, e.g. bootstrapping
// and simulation.
func FreeAndUnlimited() *Parameters {
	return &Parameters{
		Pricing: Pricing{v2: zeroPricingV2()},
		Limits:  UnlimitedLimitsAt(LatestVersion),
	}
}
