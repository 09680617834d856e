//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package sea

import (
	"fmt"
	"sync"
)

// MaskCache is an optional, caller-owned cache of generated masks,
// keyed by file name. Masks are immutable, so a cached mask is safe to
// share across concurrent decodes under the same name. The decode
// functions never consult a cache on their own.
type MaskCache struct {
	mutex sync.RWMutex

	cacheDepth int
	maskCache  map[string][]byte
}

func NewMaskCache(cacheDepth int) (mc *MaskCache) {
	mc = &MaskCache{
		maskCache:  make(map[string][]byte, cacheDepth),
		cacheDepth: cacheDepth,
	}

	return
}

// Mask returns the mask for fileName, generating and caching it on
// first use.
func (mc *MaskCache) Mask(fileName string) (mask []byte) {
	mc.mutex.RLock()
	mask, found := mc.maskCache[fileName]
	mc.mutex.RUnlock()

	if !found {
		mask = CreateMask(DeriveKey(fileName))

		mc.mutex.Lock()
		if len(mc.maskCache) >= mc.cacheDepth {
			for key := range mc.maskCache {
				delete(mc.maskCache, key)
				break
			}
		}
		mc.maskCache[fileName] = mask
		mc.mutex.Unlock()
	}

	return
}

// DecodeFile is the package-level DecodeFile, drawing the mask from
// the cache.
func (mc *MaskCache) DecodeFile(fileName string, raw []byte) (plain []byte, err error) {
	if len(raw) < checksumSize {
		err = fmt.Errorf("%s: %w (%d bytes)", fileName, ErrTooShort, len(raw))
		return
	}

	plain = Decrypt(raw[:len(raw)-checksumSize], mc.Mask(fileName))

	return
}
