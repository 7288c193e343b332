package deck

import (
	"math/rand"
	"testing"

	utils "github.com/minaorangina/spacepalace/internal"
	"github.com/stretchr/testify/assert"
)

var fullDeckCount = 52

func countCosmic(d Deck) int {
	n := 0
	for _, c := range d {
		if c.Rank.Cosmic() {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	t.Run("round one never includes cosmic cards", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			d := New(1, rand.New(rand.NewSource(seed)))
			utils.AssertEqual(t, len(d), fullDeckCount)
			utils.AssertEqual(t, countCosmic(d), 0)
		}
	})

	t.Run("later rounds add at most one of each cosmic card", func(t *testing.T) {
		seen := map[Rank]bool{}
		for seed := int64(0); seed < 200; seed++ {
			d := New(5, rand.New(rand.NewSource(seed)))
			counts := map[Rank]int{}
			for _, c := range d {
				if c.Rank.Cosmic() {
					counts[c.Rank]++
					seen[c.Rank] = true
					assert.Equal(t, Special, c.Suit)
				}
			}
			for r, n := range counts {
				assert.Equal(t, 1, n, r.String())
			}
			assert.Equal(t, fullDeckCount+countCosmic(d), len(d))
		}
		// with two hundred builds at round five every cosmic card shows up
		assert.Len(t, seen, len(CosmicRanks))
	})

	t.Run("ids are unique", func(t *testing.T) {
		d := New(5, rand.New(rand.NewSource(7)))
		ids := map[string]bool{}
		for _, c := range d {
			assert.False(t, ids[c.ID])
			ids[c.ID] = true
		}
	})
}

func TestCosmicOdds(t *testing.T) {
	tt := []struct {
		rank  Rank
		round int
		odds  float64
	}{
		{Glitch, 4, 0},
		{Glitch, 5, 0.1},
		{BlackHole, 2, 0.1},
		{Wormhole, 3, 0.2},
		{Supernova, 4, 0.3},
		{AsteroidField, 5, 0.5},
		{AsteroidField, 6, 0},
		{Ace, 5, 0},
	}

	for _, tc := range tt {
		utils.AssertEqual(t, CosmicOdds(tc.rank, tc.round), tc.odds)
	}
}

func TestDeal(t *testing.T) {
	d := New(1, rand.New(rand.NewSource(1)))
	top := d[:3]
	want := []Card{top[0], top[1], top[2]}

	t.Log("Given a full deck, When three cards are dealt, Then they come from the front")
	dealt := d.Deal(3)
	utils.AssertDeepEqual(t, dealt, want)
	utils.AssertEqual(t, len(d), fullDeckCount-3)

	t.Log("When more cards are requested than remain, Then the remainder is dealt")
	rest := d.Deal(100)
	utils.AssertEqual(t, len(rest), fullDeckCount-3)
	utils.AssertEqual(t, len(d), 0)

	t.Log("When the deck is empty, Then nothing is dealt")
	utils.AssertEqual(t, len(d.Deal(2)), 0)
}

func TestBuild(t *testing.T) {
	d := Build(1, rand.New(rand.NewSource(3)))
	utils.AssertEqual(t, len(d), fullDeckCount-TrimCount)

	t.Run("same seed yields same order", func(t *testing.T) {
		a := Build(3, rand.New(rand.NewSource(99)))
		b := Build(3, rand.New(rand.NewSource(99)))
		assert.Equal(t, len(a), len(b))
		for i := range a {
			assert.Equal(t, a[i].Rank, b[i].Rank)
			assert.Equal(t, a[i].Suit, b[i].Suit)
		}
	})
}
