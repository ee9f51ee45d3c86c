package patience

import "errors"

var (
	// ErrIllegalMove is returned (or panicked with) when a destination's
	// acceptance rule rejects a card.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNotOnTop means the card to remove is not the pile's top card.
	ErrNotOnTop = errors.New("card is not on top of pile")
	// ErrFoundationRemove means a card was taken off a foundation.
	ErrFoundationRemove = errors.New("foundations never lose cards")
	// ErrStockAccept means a card was placed onto the stock.
	ErrStockAccept = errors.New("stock does not accept cards")
	// ErrUnknownPile means a slot does not address a pile of the field.
	ErrUnknownPile = errors.New("unknown pile")
)
