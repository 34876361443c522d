// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package storagegas

import (
	"fmt"

	"github.com/Danialkaren/aptos-core/gas"
	"github.com/Danialkaren/aptos-core/state"
)

// PricingV1 charges flat rates against the canonical encoded key length and
// the raw payload length. It predates the on-chain schedule.
type PricingV1 struct {
	writeDataPerOp        gas.GasPerItem
	writeDataPerNewItem   gas.GasPerItem
	writeDataPerByteInKey gas.GasPerByte
	writeDataPerByteInVal gas.GasPerByte
	loadDataBase          gas.Gas
	loadDataPerByte       gas.GasPerByte
	loadDataFailure       gas.Gas
}

func newPricingV1(params *GasParameters) *PricingV1 {
	return &PricingV1{
		writeDataPerOp:        params.WriteDataPerOp,
		writeDataPerNewItem:   params.WriteDataPerNewItem,
		writeDataPerByteInKey: params.WriteDataPerByteInKey,
		writeDataPerByteInVal: params.WriteDataPerByteInVal,
		loadDataBase:          params.LoadDataBase,
		loadDataPerByte:       params.LoadDataPerByte,
		loadDataFailure:       params.LoadDataFailure,
	}
}

// Reads of absent data are charged a failure penalty rather than being free,
// so probing non-existent state is never cost-free.
func (p *PricingV1) calculateReadGas(loaded gas.NumBytes, found bool) gas.Gas {
	if !found {
		return p.loadDataBase.Add(p.loadDataFailure)
	}
	return p.loadDataBase.Add(p.loadDataPerByte.Cost(loaded))
}

func (p *PricingV1) writeOpGas(key state.Key, op state.WriteOp) gas.Gas {
	cost := p.writeDataPerOp.Cost(1)

	// Skipping the charge when the rate is zero also skips encoding the key,
	// which is observable when a key cannot be encoded. Historical behavior.
	if p.writeDataPerByteInKey > 0 {
		cost = cost.Add(p.writeDataPerByteInKey.Cost(encodedKeySize(key)))
	}

	data, ok := op.Bytes()
	if !ok {
		return cost
	}
	valCost := p.writeDataPerByteInVal.Cost(gas.NumBytes(len(data)))
	if op.Kind() == state.Creation {
		valCost = valCost.Add(p.writeDataPerNewItem.Cost(1))
	}
	return cost.Add(valCost)
}

// PricingV2 charges the rates of the on-chain schedule. At version 3 and
// above the charged write size is the key's abstract size plus the payload
// length, net of a free byte quota.
type PricingV2 struct {
	version             Version
	freeWriteBytesQuota gas.NumBytes
	perItemRead         gas.GasPerItem
	perItemCreate       gas.GasPerItem
	perItemWrite        gas.GasPerItem
	perByteRead         gas.GasPerByte
	perByteCreate       gas.GasPerByte
	perByteWrite        gas.GasPerByte
}

func newPricingV2(version Version, schedule *Schedule, params *GasParameters) *PricingV2 {
	if version == 0 {
		panic("quota-tiered pricing requires a non-zero feature version")
	}

	var freeWriteBytesQuota gas.NumBytes
	switch {
	case version.HasConfigurableLimits():
		freeWriteBytesQuota = params.FreeWriteBytesQuota
	case version.HasFreeWriteQuota():
		freeWriteBytesQuota = 1024
	default:
		// Unused below version 3. Zero keeps the value honest.
		freeWriteBytesQuota = 0
	}

	return &PricingV2{
		version:             version,
		freeWriteBytesQuota: freeWriteBytesQuota,
		perItemRead:         schedule.PerItemRead,
		perItemCreate:       schedule.PerItemCreate,
		perItemWrite:        schedule.PerItemWrite,
		perByteRead:         schedule.PerByteRead,
		perByteCreate:       schedule.PerByteCreate,
		perByteWrite:        schedule.PerByteWrite,
	}
}

func zeroPricingV2() *PricingV2 {
	return newPricingV2(LatestVersion, ZeroSchedule(), ZeroGasParameters())
}

// writeOpSize returns the byte count the write is charged for.
func (p *PricingV2) writeOpSize(key state.Key, data []byte) gas.NumBytes {
	valueSize := gas.NumBytes(len(data))

	if p.version.HasFreeWriteQuota() {
		keySize := gas.NumBytes(key.Size())
		return keySize.Add(valueSize).Sub(p.freeWriteBytesQuota)
	}
	return encodedKeySize(key).Add(valueSize)
}

func (p *PricingV2) calculateReadGas(loaded gas.NumBytes, found bool) gas.Gas {
	cost := p.perItemRead.Cost(1)
	if !found {
		return cost
	}
	return cost.Add(p.perByteRead.Cost(loaded))
}

func (p *PricingV2) writeOpGas(key state.Key, op state.WriteOp) gas.Gas {
	data, _ := op.Bytes()
	switch op.Kind() {
	case state.Creation:
		return p.perItemCreate.Cost(1).
			Add(p.perByteCreate.Cost(p.writeOpSize(key, data)))
	case state.Modification:
		return p.perItemWrite.Cost(1).
			Add(p.perByteWrite.Cost(p.writeOpSize(key, data)))
	default: // deletion
		return 0
	}
}

// Pricing is the closed two-variant choice of cost formula backing one
// configuration epoch. Exactly one variant is set.
type Pricing struct {
	v1 *PricingV1
	v2 *PricingV2
}

// CalculateReadGas returns the cost of loading [loaded] bytes, or of a miss
// when [found] is false.
func (p Pricing) CalculateReadGas(loaded gas.NumBytes, found bool) gas.Gas {
	switch {
	case p.v1 != nil:
		return p.v1.calculateReadGas(loaded, found)
	case p.v2 != nil:
		return p.v2.calculateReadGas(loaded, found)
	default:
		panic("storage pricing not initialized")
	}
}

// WriteOpGas returns the cost of applying [op] to [key].
func (p Pricing) WriteOpGas(key state.Key, op state.WriteOp) gas.Gas {
	switch {
	case p.v1 != nil:
		return p.v1.writeOpGas(key, op)
	case p.v2 != nil:
		return p.v2.writeOpGas(key, op)
	default:
		panic("storage pricing not initialized")
	}
}

// encodedKeySize returns the canonical encoded length of [key]. A key that
// cannot be encoded is an unrecoverable invariant violation; the node must
// not keep executing with a state key it cannot represent.
func encodedKeySize(key state.Key) gas.NumBytes {
	encoded, err := key.Encode()
	if err != nil {
		panic(fmt.Sprintf("failed to encode state key: %v", err))
	}
	return gas.NumBytes(len(encoded))
}
