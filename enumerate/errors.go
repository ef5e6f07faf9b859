package enumerate

import "errors"

// ErrSizeOverflow reports that the size of a requested result cannot be
// represented, so eager materialization or exact counting must refuse
// rather than silently wrap around.
var ErrSizeOverflow = errors.New("result size overflows")
