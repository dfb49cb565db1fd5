// Package subscription implements long-lived event sources declared by the
// application.
//
// A Subscription is a declaration; the sources behind it are started and
// stopped by a Tracker, which recognizes the same source across declarations
// by its identity: a hash of the shape of its Recipe.
package subscription

import (
	"context"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"src.plugview.dev/pkg/event"
)

// Event is an interaction event broadcast to running recipes.
type Event struct {
	Window uuid.UUID
	Event  event.Event
	Status event.Status
}

// Recipe describes an event source.
type Recipe interface {
	// Hash writes the identity of the recipe. Two recipes writing the same
	// bytes are the same source. It should include a name unique to the kind
	// of recipe, and write each field with WriteField.
	Hash(h *xxhash.Digest)
	// Stream runs the source until ctx is done or the source is exhausted,
	// passing messages to emit. Interaction events arrive on input.
	Stream(ctx context.Context, input <-chan Event, emit func(any))
}

// Identity returns the identity of r.
func Identity(r Recipe) uint64 {
	h := xxhash.New()
	r.Hash(h)
	return h.Sum64()
}

// WriteField writes s to h preceded by its length, so that the boundaries
// between fields are part of the identity.
func WriteField(h *xxhash.Digest, s string) {
	var n [binary.MaxVarintLen64]byte
	h.Write(n[:binary.PutUvarint(n[:], uint64(len(s)))])
	h.WriteString(s)
}

// Subscription is a set of recipes. The zero value declares nothing.
type Subscription struct {
	recipes []Recipe
}

// None declares no sources.
func None() Subscription { return Subscription{} }

// FromRecipe declares the source described by r.
func FromRecipe(r Recipe) Subscription { return Subscription{[]Recipe{r}} }

// Batch declares the sources of all of subs.
func Batch(subs ...Subscription) Subscription {
	var recipes []Recipe
	for _, s := range subs {
		recipes = append(recipes, s.recipes...)
	}
	return Subscription{recipes}
}

// Recipes returns the recipes of s.
func (s Subscription) Recipes() []Recipe { return s.recipes }

// Map returns s with every message passed through f; a nil result drops the
// message. The identity of each recipe is derived from the original, so f
// itself does not take part in it.
func Map(s Subscription, f func(any) any) Subscription {
	recipes := make([]Recipe, len(s.recipes))
	for i, r := range s.recipes {
		recipes[i] = mapped{r, f}
	}
	return Subscription{recipes}
}

type mapped struct {
	inner Recipe
	f     func(any) any
}

func (m mapped) Hash(h *xxhash.Digest) {
	WriteField(h, "subscription.Map")
	m.inner.Hash(h)
}

func (m mapped) Stream(ctx context.Context, input <-chan Event, emit func(any)) {
	m.inner.Stream(ctx, input, func(msg any) {
		if msg = m.f(msg); msg != nil {
			emit(msg)
		}
	})
}
