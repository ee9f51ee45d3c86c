package patience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/patience/internal/deck"
	"github.com/lox/patience/internal/randutil"
)

func emptyFoundations() []FinishStack {
	return make([]FinishStack, Foundations)
}

func TestDealLayout(t *testing.T) {
	f := FillWithRandomCards(42, DefaultRules())

	stacks := f.PlayStacks()
	require.Len(t, stacks, Columns)
	dealt := 0
	for i, p := range stacks {
		cards := p.Cards()
		require.Len(t, cards, i+1, "column %d", i)
		for j, c := range cards {
			assert.Equal(t, j == len(cards)-1, c.Visible, "column %d card %d visibility", i, j)
		}
		dealt += len(cards)
	}
	assert.Equal(t, 28, dealt)

	require.Len(t, f.FinishStacks(), Foundations)
	for _, fs := range f.FinishStacks() {
		assert.Zero(t, fs.Len())
	}

	assert.Equal(t, 24, f.Stock().Len())
	assert.Zero(t, f.Stock().Cursor())
	require.NoError(t, f.CheckCards())
	assert.ElementsMatch(t, deck.StandardDeck(), hiddenAll(f.Cards()))
	assert.False(t, f.IsDone())
	assert.Equal(t, 21, f.HiddenCards())
}

func TestDealIsDeterministic(t *testing.T) {
	a := FillWithRandomCards(7, DefaultRules())
	b := Deal(randutil.New(7), DefaultRules())
	c := FillWithRandomCards(8, DefaultRules())

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
}

func TestPermutationInvariance(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		f := FillWithRandomCards(seed, DefaultRules()).DoTrivialMoves()

		stacks := f.PlayStacks()
		randutil.Shuffle(randutil.New(seed*31), stacks)
		g := New(f.Stock(), stacks, f.FinishStacks(), WithRules(f.Rules()))

		reversed := f.PlayStacks()
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		h := New(f.Stock(), reversed, f.FinishStacks(), WithRules(f.Rules()))

		assert.True(t, f.Equal(g), "seed %d shuffled", seed)
		assert.True(t, g.Equal(f), "seed %d shuffled (symmetric)", seed)
		assert.Equal(t, f.Hash(), g.Hash(), "seed %d shuffled hash", seed)
		assert.True(t, f.Equal(h), "seed %d reversed", seed)
		assert.Equal(t, f.Hash(), h.Hash(), "seed %d reversed hash", seed)
	}
}

func TestEmptyColumnsDoNotAffectIdentity(t *testing.T) {
	stock := NewStock(nil)
	a := New(stock, []PlayStack{PlayStackOf(up("Kd")), PlayStackOf()}, emptyFoundations())
	b := New(stock, []PlayStack{PlayStackOf(), PlayStackOf(), PlayStackOf(up("Kd"))}, emptyFoundations())

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEqualDistinguishesPositions(t *testing.T) {
	f := FillWithRandomCards(3, DefaultRules())

	turned := f.NextCard()
	assert.False(t, f.Equal(turned), "stock cursor differs")
	assert.Equal(t, f.Hash(), turned.Hash(), "hash only covers the tableau")

	moves := f.Moves()
	for _, m := range moves {
		g := f.Move(m.Card, m.From, m.To)
		assert.False(t, f.Equal(g), "move %s", m)
	}

	assert.False(t, f.Equal(nil))
	var nilField *Field
	assert.True(t, nilField.Equal(nil))
}

func TestHashEqualConsistency(t *testing.T) {
	var states []*Field
	for seed := int64(1); seed <= 4; seed++ {
		root := FillWithRandomCards(seed, DefaultRules())
		states = append(states, root, root.NextCard(), root.DoTrivialMoves())
		for _, m := range root.Moves() {
			child := root.Move(m.Card, m.From, m.To)
			states = append(states, child, child.NextCard())
			for _, m2 := range child.Moves() {
				states = append(states, child.Move(m2.Card, m2.From, m2.To))
			}
		}
		// the same position reached twice with columns in other slots
		stacks := root.PlayStacks()
		stacks[0], stacks[6] = stacks[6], stacks[0]
		states = append(states, New(root.Stock(), stacks, root.FinishStacks()))
	}

	equalPairs := 0
	for i := range states {
		for j := range states {
			if states[i].Equal(states[j]) {
				equalPairs++
				assert.Equal(t, states[i].Hash(), states[j].Hash(), "states %d and %d", i, j)
				assert.True(t, states[j].Equal(states[i]), "Equal must be symmetric")
			}
		}
	}
	assert.Greater(t, equalPairs, len(states), "expected some equal pairs beyond identity")
}

func TestFoundationsImpliedByStockAndTableau(t *testing.T) {
	// Two fields that agree on stock and tableau must agree on foundations
	// (up to slot order), which is why Equal can skip them.
	f := FillWithRandomCards(11, DefaultRules()).DoTrivialMoves()
	for _, m := range f.Moves() {
		a := f.Move(m.Card, m.From, m.To)
		finishes := a.FinishStacks()
		for i, j := 0, len(finishes)-1; i < j; i, j = i+1, j-1 {
			finishes[i], finishes[j] = finishes[j], finishes[i]
		}
		b := New(a.Stock(), a.PlayStacks(), finishes)
		require.True(t, a.Equal(b))
		require.NoError(t, b.CheckCards())
		assert.Equal(t, a.FoundationCards(), deck.Size-a.Stock().Len()-tableauCards(a))
	}
}

func TestIsDone(t *testing.T) {
	open := New(NewStock(nil), []PlayStack{PlayStackOf(up("Kd"), up("Qs")), PlayStackOf()}, emptyFoundations())
	assert.True(t, open.IsDone())

	closed := New(NewStock(nil), []PlayStack{PlayStackOf(down("Kd"), up("Qs")), PlayStackOf(up("Kh"))}, emptyFoundations())
	assert.False(t, closed.IsDone())

	// turning the last hidden card finishes the game
	opened := closed.Move(up("Qs"), Tableau(0), Tableau(1))
	assert.True(t, opened.IsDone())
}

func TestCheckCards(t *testing.T) {
	f := FillWithRandomCards(5, DefaultRules())
	require.NoError(t, f.CheckCards())

	short := New(NewStock(nil), f.PlayStacks(), f.FinishStacks())
	assert.Error(t, short.CheckCards())

	stacks := f.PlayStacks()
	stacks[0] = PlayStackOf(append(stacks[0].Cards(), stacks[1].Cards()...)...)
	dup := New(f.Stock(), stacks, f.FinishStacks())
	assert.Error(t, dup.CheckCards())
}

func TestOriginsAndDestinations(t *testing.T) {
	f := FillWithRandomCards(1, DefaultRules())

	origins := f.Origins()
	require.Len(t, origins, 1+Columns)
	assert.Equal(t, StockSlot, origins[0])
	assert.Equal(t, Tableau(6), origins[7])

	dests := f.Destinations()
	require.Len(t, dests, Columns+Foundations)
	assert.Equal(t, Tableau(0), dests[0])
	assert.Equal(t, Foundation(0), dests[Columns])

	_, ok := f.Pile(Foundation(Foundations))
	assert.False(t, ok)
	_, ok = f.Pile(Slot{Kind: KindStock, Index: 1})
	assert.False(t, ok)
}

func tableauCards(f *Field) int {
	n := 0
	for _, p := range f.PlayStacks() {
		n += p.Len()
	}
	return n
}

func hiddenAll(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	for i, c := range cards {
		out[i] = c.Hidden()
	}
	return out
}
