// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package storagegas

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Danialkaren/aptos-core/state"
	"github.com/Danialkaren/aptos-core/utils/wrappers"
)

var _ Checker = (*MeteredChecker)(nil)

// MeteredChecker wraps a Checker and counts how many change sets it sees and
// how many it rejects. The wrapped checker stays pure; the counters are
// observability only and never influence the outcome.
type MeteredChecker struct {
	checker Checker

	numChecks   prometheus.Counter
	numRejected prometheus.Counter
}

func NewMeteredChecker(
	namespace string,
	reg prometheus.Registerer,
	checker Checker,
) (*MeteredChecker, error) {
	m := &MeteredChecker{
		checker: checker,
		numChecks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_set_checks",
			Help:      "number of change sets validated",
		}),
		numRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_set_rejections",
			Help:      "number of change sets rejected for exceeding a size cap",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(m.numChecks),
		reg.Register(m.numRejected),
	)
	return m, errs.Err
}

func (m *MeteredChecker) CheckChangeSet(changeSet *state.ChangeSet) error {
	m.numChecks.Inc()
	if err := m.checker.CheckChangeSet(changeSet); err != nil {
		m.numRejected.Inc()
		return err
	}
	return nil
}
