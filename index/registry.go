// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"fmt"
	"io"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordindex/avl"
	"github.com/bitmark-inc/recordindex/counter"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/record"
)

// ConfirmFunc - decide if a candidate record should be removed
type ConfirmFunc func(p *record.Prisoner) bool

// VisitFunc - receive one record of a listing
type VisitFunc func(p *record.Prisoner)

// Registry - prisoners indexed by id and by name
type Registry struct {
	sync.Mutex
	log   *logger.L
	store Store
	ids   *avl.Owner[record.Prisoner]
	names *avl.Tree[record.Prisoner]

	adds     counter.Counter
	removes  counter.Counter
	searches counter.Counter
}

// Statistics - registry counters
type Statistics struct {
	Records    int    `json:"records"`
	Names      int    `json:"names"`
	IDHeight   int    `json:"idHeight"`
	NameHeight int    `json:"nameHeight"`
	Adds       uint64 `json:"adds"`
	Removes    uint64 `json:"removes"`
	Searches   uint64 `json:"searches"`
	Rotations  uint64 `json:"rotations"`
}

// New - create an empty registry
//
// store may be nil for a memory only registry; maximum limits the
// number of records, zero is unlimited
func New(log *logger.L, store Store, maximum int) *Registry {
	if nil == log {
		fault.Panic("index.New: nil logger")
	}
	return &Registry{
		log:   log,
		store: store,
		ids: avl.NewOwner(record.CompareID, destroy,
			avl.WithMaximumNodes[record.Prisoner](maximum),
		),
		names: avl.New(record.CompareName,
			avl.AllowDuplicates[record.Prisoner](),
			avl.WithMaximumNodes[record.Prisoner](maximum),
		),
	}
}

// destroying a record clears it so a residual handle shows nothing
func destroy(p *record.Prisoner) {
	*p = record.Prisoner{}
}

// Load - add every record from the store to the indexes
func (r *Registry) Load() error {
	if nil == r.store {
		return nil
	}

	r.Lock()
	defer r.Unlock()

	n := 0
	err := r.store.ForEach(func(p *record.Prisoner) error {
		if err := r.insert(p); nil != err {
			r.log.Errorf("load: %s  error: %s", p.ID, err)
			return err
		}
		n += 1
		return nil
	})
	if nil != err {
		return err
	}
	r.log.Infof("loaded: %d records", n)
	return nil
}

// Close - empty both indexes and destroy every record
func (r *Registry) Close() {
	r.Lock()
	defer r.Unlock()

	n := r.ids.Count()
	r.names.Close()
	r.ids.Close(avl.Destroy)
	r.log.Infof("closed: released %d records", n)
}

// Count - number of records
func (r *Registry) Count() int {
	r.Lock()
	defer r.Unlock()
	return r.ids.Count()
}

// Add - validate, index and persist a record
//
// the registry owns the record afterwards
func (r *Registry) Add(p *record.Prisoner) error {
	if nil == p {
		return fault.ErrNilRecord
	}
	if err := p.Validate(); nil != err {
		return err
	}

	r.Lock()
	defer r.Unlock()

	if err := r.insert(p); nil != err {
		r.log.Warnf("add: %s  error: %s", p.ID, err)
		return err
	}

	if nil != r.store {
		if err := r.store.Put(p); nil != err {
			r.log.Errorf("add: %s  store error: %s", p.ID, err)
			r.names.DeleteAt(p)
			r.ids.DeleteAtWith(p, avl.Preserve)
			return err
		}
	}

	r.adds.Increment()
	r.log.Debugf("added: %s", p.Brief())
	return nil
}

// insert into both indexes, leaving neither changed on failure
func (r *Registry) insert(p *record.Prisoner) error {
	err := r.ids.Insert(p)
	if fault.ErrDuplicateKey == err {
		return fault.ErrDuplicateRecord
	} else if nil != err {
		return err
	}

	err = r.names.Insert(p)
	if nil != err {
		r.ids.DeleteAtWith(p, avl.Preserve)
		return err
	}
	return nil
}

// Get - find a record by id
func (r *Registry) Get(id string) (*record.Prisoner, error) {
	if !record.ValidID(id) {
		return nil, fault.ErrIdentifierInvalid
	}

	r.Lock()
	defer r.Unlock()

	r.searches.Increment()
	if 0 == r.ids.Search(record.KeyByID(id)) {
		return nil, fault.ErrRecordNotFound
	}
	p, _ := r.ids.GetNextResult()
	return p, nil
}

// SearchByName - every record with this name, oldest first
func (r *Registry) SearchByName(last string, first string) []*record.Prisoner {
	r.Lock()
	defer r.Unlock()

	r.searches.Increment()
	n := r.names.Search(record.KeyByName(last, first))
	results := make([]*record.Prisoner, 0, n)
	for {
		p, ok := r.names.GetNextResult()
		if !ok {
			break
		}
		results = append(results, p)
	}
	return results
}

// RemoveByID - remove a record after confirmation
//
// confirm may be nil. The returned value is a copy of the removed
// record
func (r *Registry) RemoveByID(id string, confirm ConfirmFunc) (*record.Prisoner, error) {
	if !record.ValidID(id) {
		return nil, fault.ErrIdentifierInvalid
	}

	r.Lock()
	defer r.Unlock()

	if 0 == r.ids.Search(record.KeyByID(id)) {
		return nil, fault.ErrRecordNotFound
	}
	p, _ := r.ids.GetNextResult()
	if nil != confirm && !confirm(p) {
		return nil, fault.ErrNotConfirmed
	}
	return r.release(p)
}

// RemoveByName - remove the first record with this name, oldest
// first, that confirm accepts
func (r *Registry) RemoveByName(last string, first string, confirm ConfirmFunc) (*record.Prisoner, error) {
	r.Lock()
	defer r.Unlock()

	if 0 == r.names.Search(record.KeyByName(last, first)) {
		return nil, fault.ErrRecordNotFound
	}
	defer r.names.FlushSearch()

	for {
		p, ok := r.names.GetNextResult()
		if !ok {
			return nil, fault.ErrNotConfirmed
		}
		if nil == confirm || confirm(p) {
			return r.release(p)
		}
	}
}

// remove a record from the store then from both indexes
//
// a store failure leaves both indexes unchanged
func (r *Registry) release(p *record.Prisoner) (*record.Prisoner, error) {
	if nil != r.store {
		if err := r.store.Delete(p.ID); nil != err {
			r.log.Errorf("remove: %s  store error: %s", p.ID, err)
			return nil, err
		}
	}

	removed := *p
	if !r.names.DeleteAt(p) {
		fault.Panicf("index: record: %s missing from name index", removed.ID)
	}
	if !r.ids.DeleteAtWith(p, avl.Destroy) {
		fault.Panicf("index: record: %s missing from id index", removed.ID)
	}
	r.removes.Increment()
	r.log.Debugf("removed: %s", removed.Brief())
	return &removed, nil
}

// ListByID - visit every record in id order
func (r *Registry) ListByID(visit VisitFunc) {
	r.Lock()
	defer r.Unlock()
	r.ids.Traverse(avl.VisitFunc[record.Prisoner](visit))
}

// ListByName - visit every record in name order
func (r *Registry) ListByName(visit VisitFunc) {
	r.Lock()
	defer r.Unlock()
	r.names.Traverse(avl.VisitFunc[record.Prisoner](visit))
}

// First - record with the lowest id, nil if empty
func (r *Registry) First() *record.Prisoner {
	r.Lock()
	defer r.Unlock()
	return r.ids.First()
}

// Last - record with the highest id, nil if empty
func (r *Registry) Last() *record.Prisoner {
	r.Lock()
	defer r.Unlock()
	return r.ids.Last()
}

// FilterByCrime - visit records with this crime in id order
func (r *Registry) FilterByCrime(crime record.Crime, visit VisitFunc) int {
	r.Lock()
	defer r.Unlock()
	return r.ids.Filter(record.MatchCrime, avl.VisitFunc[record.Prisoner](visit), record.KeyByCrime(crime))
}

// PrintNames - the name index as an indented tree
func (r *Registry) PrintNames(w io.Writer, showLevels bool) bool {
	r.Lock()
	defer r.Unlock()
	return r.names.PrintNested(w, func(w io.Writer, p *record.Prisoner) {
		fmt.Fprint(w, p.Brief())
	}, showLevels)
}

// Import - add every valid line of a record file
//
// returns the number added and the errors for lines that were not
func (r *Registry) Import(rd io.Reader) (int, []error) {
	prisoners, errs := record.ReadFrom(rd)
	added := 0
	for _, p := range prisoners {
		err := r.Add(p)
		if nil != err {
			errs = append(errs, fmt.Errorf("id: %s: %w", p.ID, err))
			continue
		}
		added += 1
	}
	r.log.Infof("import: added: %d  errors: %d", added, len(errs))
	return added, errs
}

// Export - write every record in id order
func (r *Registry) Export(w io.Writer) error {
	r.Lock()
	defer r.Unlock()

	prisoners := make([]*record.Prisoner, 0, r.ids.Count())
	r.ids.Traverse(func(p *record.Prisoner) {
		prisoners = append(prisoners, p)
	})
	return record.WriteTo(w, prisoners)
}

// Statistics - current counts
func (r *Registry) Statistics() Statistics {
	r.Lock()
	defer r.Unlock()
	return Statistics{
		Records:    r.ids.Count(),
		Names:      r.names.Count(),
		IDHeight:   r.ids.Height(),
		NameHeight: r.names.Height(),
		Adds:       r.adds.Uint64(),
		Removes:    r.removes.Uint64(),
		Searches:   r.searches.Uint64(),
		Rotations:  r.ids.Rotations() + r.names.Rotations(),
	}
}

// Check - both indexes are balanced, ordered and agree on the count
func (r *Registry) Check() bool {
	r.Lock()
	defer r.Unlock()
	return r.ids.CheckBalance() && r.ids.CheckCounts() &&
		r.names.CheckBalance() && r.names.CheckCounts() &&
		r.ids.Count() == r.names.Count()
}
