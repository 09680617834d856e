//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package sea

import "errors"

// ErrTooShort is returned when a raw buffer cannot hold the trailing
// checksum word.
var ErrTooShort = errors.New("file too short for checksum footer")
