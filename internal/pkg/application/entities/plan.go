package entities

import (
	"context"
	"fmt"

	"github.com/diwise/home-entity-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/home-entity-mgmt/pkg/types"
)

type scopeKind int

const (
	scopeHome scopeKind = iota
	scopeArea
)

type counterDelta struct {
	kind    scopeKind
	areaID  string
	homeID  string
	userID  string
	appCode string

	entities    int64
	controllers int64
}

// plan is the uniform shape every lifecycle cascade is reduced to: an ordered
// list of row removals, a list of row inserts and a set of merged counter
// deltas. Building the plan per case and executing it in one place keeps the
// HC/leaf and owner/member branches from each reimplementing the arithmetic.
type plan struct {
	removals [][]storage.ConditionFunc
	inserts  []types.Device
	deltas   []counterDelta

	index map[string]int
}

func newPlan() *plan {
	return &plan{
		index: map[string]int{},
	}
}

func (p *plan) insert(d types.Device) {
	p.inserts = append(p.inserts, d)
}

// remove schedules a row removal. Removals execute in the order they were
// added, so callers schedule children before their controller.
func (p *plan) remove(conditions ...storage.ConditionFunc) {
	p.removals = append(p.removals, conditions)
}

func (p *plan) adjustHome(homeID, userID, appCode string, entities, controllers int64) {
	p.adjust(counterDelta{
		kind:        scopeHome,
		homeID:      homeID,
		userID:      userID,
		appCode:     appCode,
		entities:    entities,
		controllers: controllers,
	})
}

func (p *plan) adjustArea(areaID, homeID, userID, appCode string, entities, controllers int64) {
	p.adjust(counterDelta{
		kind:        scopeArea,
		areaID:      areaID,
		homeID:      homeID,
		userID:      userID,
		appCode:     appCode,
		entities:    entities,
		controllers: controllers,
	})
}

// adjust merges deltas per scope so a scope is written exactly once per plan,
// no matter how many branches contributed to it.
func (p *plan) adjust(d counterDelta) {
	key := fmt.Sprintf("%d/%s/%s/%s/%s", d.kind, d.areaID, d.homeID, d.userID, d.appCode)

	if i, ok := p.index[key]; ok {
		p.deltas[i].entities += d.entities
		p.deltas[i].controllers += d.controllers
		return
	}

	p.index[key] = len(p.deltas)
	p.deltas = append(p.deltas, d)
}

func (p *plan) apply(ctx context.Context, s EntityStorage) error {
	for _, conditions := range p.removals {
		_, err := s.DeleteDevices(ctx, conditions...)
		if err != nil {
			return err
		}
	}

	for _, d := range p.inserts {
		err := s.AddDevice(ctx, d)
		if err != nil {
			return err
		}
	}

	for _, d := range p.deltas {
		if d.entities == 0 && d.controllers == 0 {
			continue
		}

		var err error

		switch d.kind {
		case scopeHome:
			err = s.AdjustHomeStatistics(ctx, d.homeID, d.userID, d.appCode, d.entities, d.controllers)
		case scopeArea:
			err = s.AdjustAreaStatistics(ctx, d.areaID, d.homeID, d.userID, d.appCode, d.entities, d.controllers)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// deltaFor returns the counter contribution of a single device row.
func deltaFor(d types.Device) (entities, controllers int64) {
	if d.IsController() {
		return 0, 1
	}
	return 1, 0
}
