package deck

import rand "math/rand/v2"

// Deck represents a deck of playing cards. The random source is injected so
// callers that need reproducible deals can seed it themselves.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a new standard 52-card deck using the provided random source
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	return d
}

// NewWithout creates a deck with the given cards removed. Equity simulation
// deals opponent hands and board runouts from the cards not already known.
func NewWithout(rng *rand.Rand, excluded ...Card) *Deck {
	skip := make(map[Card]bool, len(excluded))
	for _, c := range excluded {
		skip[c] = true
	}

	d := &Deck{
		cards: make([]Card, 0, 52-len(excluded)),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(rank, suit)
			if !skip[card] {
				d.cards = append(d.cards, card)
			}
		}
	}

	return d
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}

	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		if card, ok := d.Deal(); ok {
			cards = append(cards, card)
		}
	}

	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
