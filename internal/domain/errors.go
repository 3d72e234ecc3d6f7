package domain

import "errors"

// ErrNotFound reports that an order, product or shipment does not exist on
// the upstream system. The commerce transport never raises this itself; the
// client maps an empty edge list to it.
var ErrNotFound = errors.New("not found")

// ErrBadRequest reports a malformed or incomplete client request body.
var ErrBadRequest = errors.New("invalid request body")

// ErrUnauthorized reports a missing session or stored token for a shop.
var ErrUnauthorized = errors.New("unauthorized")
