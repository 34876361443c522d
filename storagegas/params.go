// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package storagegas

import "github.com/Danialkaren/aptos-core/gas"

// GasParameters is the raw bag of storage-related rate, fee, quota and cap
// constants. Values are fixed-point gas units agreed on by the whole network.
type GasParameters struct {
	// Flat-rate pricing constants.
	WriteDataPerOp        gas.GasPerItem `json:"writeDataPerOp"`
	WriteDataPerNewItem   gas.GasPerItem `json:"writeDataPerNewItem"`
	WriteDataPerByteInKey gas.GasPerByte `json:"writeDataPerByteInKey"`
	WriteDataPerByteInVal gas.GasPerByte `json:"writeDataPerByteInVal"`
	LoadDataBase          gas.Gas        `json:"loadDataBase"`
	LoadDataPerByte       gas.GasPerByte `json:"loadDataPerByte"`
	LoadDataFailure       gas.Gas        `json:"loadDataFailure"`

	// Bytes of key+value charged nothing on a write. Read at version 5 and
	// above; earlier versions pin their own value.
	FreeWriteBytesQuota gas.NumBytes `json:"freeWriteBytesQuota"`

	// Change-set caps. Read at version 5 and above.
	MaxBytesPerWriteOp                gas.NumBytes `json:"maxBytesPerWriteOp"`
	MaxBytesAllWriteOpsPerTransaction gas.NumBytes `json:"maxBytesAllWriteOpsPerTransaction"`
	MaxBytesPerEvent                  gas.NumBytes `json:"maxBytesPerEvent"`
	MaxBytesAllEventsPerTransaction   gas.NumBytes `json:"maxBytesAllEventsPerTransaction"`
}

// ZeroGasParameters returns a parameter bag with every constant zeroed, for
// contexts where metering must be present but cost nothing.
func ZeroGasParameters() *GasParameters {
	return &GasParameters{}
}

// Schedule is the governance-updatable rate table for quota-tiered pricing.
// A new on-chain value always yields a brand-new Schedule.
type Schedule struct {
	PerItemRead   gas.GasPerItem `json:"perItemRead"`
	PerItemCreate gas.GasPerItem `json:"perItemCreate"`
	PerItemWrite  gas.GasPerItem `json:"perItemWrite"`
	PerByteRead   gas.GasPerByte `json:"perByteRead"`
	PerByteCreate gas.GasPerByte `json:"perByteCreate"`
	PerByteWrite  gas.GasPerByte `json:"perByteWrite"`
}

// ZeroSchedule returns a schedule with every rate zeroed.
func ZeroSchedule() *Schedule {
	return &Schedule{}
}
