// Package fuzzdex implements an in-memory fuzzy-search index for short
// phrases (city names, street names, points of interest) with an attached
// constraint set. Build an index by calling AddPhrase repeatedly, call
// Finish once, then Search it from any number of goroutines.
//
// The package does no I/O, spawns no goroutines, and holds no hidden global
// configuration: every tuning knob (max_distance, limit) is an explicit
// Search argument. It is meant to be embedded by a host program, not run as
// a standalone service.
package fuzzdex

import (
	"sort"
	"sync"

	"fuzzdex/internal/trigram"
)

// DefaultMaxDistance is the edit-distance cap Search applies when its
// maxDistance argument is nil.
const DefaultMaxDistance = 2

// DefaultLimit is the result cap Search applies when its limit argument is
// nil.
const DefaultLimit = 30

type state int

const (
	building state = iota
	frozen
)

// posting is a (phrase_id, token_position) pair: one occurrence of a token
// within one phrase.
type posting struct {
	phraseID uint64
	position int
}

type phrase struct {
	id          uint64
	origin      string
	tokens      []string
	constraints map[uint64]struct{}
}

// FuzzDex is an in-memory fuzzy-search index. The zero value is not usable;
// construct one with New.
//
// AddPhrase and Finish require exclusive access and must not be called
// concurrently with each other or with Search — build single-threaded (or
// serialize externally), then freeze. Once Finish returns, Search is safe
// from any number of concurrent goroutines without further synchronization.
type FuzzDex struct {
	mu    sync.RWMutex
	state state

	phrases         map[uint64]*phrase
	tokenTable      map[string][]posting
	trigramIndex    *trigram.Index
	constraintIndex map[uint64]map[uint64]struct{}
}

// New returns an empty index in the Building state.
func New() *FuzzDex {
	return &FuzzDex{
		state:           building,
		phrases:         make(map[uint64]*phrase),
		tokenTable:      make(map[string][]posting),
		trigramIndex:    trigram.NewIndex(),
		constraintIndex: make(map[uint64]map[uint64]struct{}),
	}
}

// AddPhrase tokenizes text, records it under id with the given constraints,
// and indexes every token's postings and trigrams. It fails with
// ErrIndexFrozen once Finish has been called, ErrDuplicateID if id is
// already present, and ErrEmptyPhrase if text tokenizes to an empty
// sequence. Duplicate tokens within one phrase are indexed at their
// distinct positions.
func (f *FuzzDex) AddPhrase(text string, id uint64, constraints ...uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == frozen {
		return ErrIndexFrozen
	}
	if _, exists := f.phrases[id]; exists {
		return ErrDuplicateID
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return ErrEmptyPhrase
	}

	constraintSet := make(map[uint64]struct{}, len(constraints))
	for _, c := range constraints {
		constraintSet[c] = struct{}{}
	}

	f.phrases[id] = &phrase{
		id:          id,
		origin:      text,
		tokens:      tokens,
		constraints: constraintSet,
	}

	for pos, tok := range tokens {
		f.tokenTable[tok] = append(f.tokenTable[tok], posting{phraseID: id, position: pos})
		f.trigramIndex.Add(tok)
	}

	for c := range constraintSet {
		set, ok := f.constraintIndex[c]
		if !ok {
			set = make(map[uint64]struct{})
			f.constraintIndex[c] = set
		}
		set[id] = struct{}{}
	}

	return nil
}

// Finish transitions the index from Building to Frozen, sorting every
// posting list by phrase id then token position so output is deterministic.
// It is idempotent — calling it again on an already-frozen index is a
// no-op. Finish establishes the release fence: once it returns, Search may
// be called concurrently from any number of goroutines.
func (f *FuzzDex) Finish() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == frozen {
		return
	}

	for _, postings := range f.tokenTable {
		sort.Slice(postings, func(i, j int) bool {
			if postings[i].phraseID != postings[j].phraseID {
				return postings[i].phraseID < postings[j].phraseID
			}
			return postings[i].position < postings[j].position
		})
	}

	f.state = frozen
}

// Len returns the number of phrases currently held by the index,
// regardless of state.
func (f *FuzzDex) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.phrases)
}
