package tui

import (
	"math/rand/v2"
	"slices"
)

// Rotation hands out phrases so that the same question doesn't get repeated
// over and over. The first phrase is handed out first and never again, after
// that the rest are handed out in random order, all of them once before any
// of them is repeated.
//
// Usage:
//
//	r := tui.NewRotation([]string{
//		"To start, is %s true?",
//		"Next up, %s?",
//		"And %s?",
//	})
//	for _, name := range names {
//		fmt.Printf(r.Next(), name)
//	}
type Rotation struct {
	phrases []string
	next    int

	// whether phrases[0] has been dropped yet
	startedOver bool
}

func NewRotation(phrases []string) *Rotation {
	return &Rotation{
		// copy so shuffling doesn't touch the caller's slice
		phrases: slices.Clone(phrases),
	}
}

// Next returns the next phrase, or "" if there are no phrases at all.
func (r *Rotation) Next() string {
	if len(r.phrases) == 0 {
		return ""
	}
	if len(r.phrases) == 1 {
		return r.phrases[0]
	}

	if r.next >= len(r.phrases) {
		if !r.startedOver {
			// the opening phrase is only used once
			r.phrases = r.phrases[1:]
			r.startedOver = true
		}
		rand.Shuffle(len(r.phrases), func(i, j int) {
			r.phrases[i], r.phrases[j] = r.phrases[j], r.phrases[i]
		})
		r.next = 0
	}

	phrase := r.phrases[r.next]
	r.next++
	return phrase
}
