// Package encourage holds the catalog of motivational phrases shown next to
// each goal.
package encourage

import (
	"math/rand/v2"
	"time"
)

var phrases = []string{
	"You've got this!",
	"Keep going strong!",
	"Amazing progress!",
	"One day at a time!",
	"You're doing great!",
	"Stay focused!",
	"Incredible work!",
	"Persistence pays off!",
	"Keep pushing forward!",
	"Celebrate this milestone!",
	"Look how far you've come!",
	"Keep up the momentum!",
	"Fantastic effort!",
	"You're inspiring!",
	"Badass milestone!",
	"No mercy on cravings!",
	"Fear does not exist in this dojo!",
	"Defeat does not exist!",
	"Strike hard against temptation!",
	"Don't let weakness sweep the leg!",
	"Finish it! Stay strong!",
	"This ain't easy, but you're doing it!",
	"Awesome!",
	"No fear!",
}

// Phrases returns a copy of the built-in catalog.
func Phrases() []string {
	out := make([]string, len(phrases))
	copy(out, phrases)
	return out
}

// Catalog picks phrases uniformly at random. A Catalog is not safe for
// concurrent use.
type Catalog struct {
	phrases []string
	rnd     *rand.Rand
}

// New returns a catalog over list drawing from src. It panics when list is
// empty.
func New(list []string, src rand.Source) *Catalog {
	if len(list) == 0 {
		panic("encourage: empty catalog")
	}
	c := &Catalog{phrases: make([]string, len(list)), rnd: rand.New(src)}
	copy(c.phrases, list)
	return c
}

// Default returns the built-in catalog seeded from the clock.
func Default() *Catalog {
	seed := uint64(time.Now().UnixNano())
	return New(phrases, rand.NewPCG(seed, seed>>32|1))
}

// Random returns one phrase from the catalog.
func (c *Catalog) Random() string {
	return c.phrases[c.rnd.IntN(len(c.phrases))]
}

// Len is the number of phrases in the catalog.
func (c *Catalog) Len() int {
	return len(c.phrases)
}
