//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package sea

import (
	"bytes"
	"errors"
	"testing"
)

func TestMaskCacheHit(t *testing.T) {
	mc := NewMaskCache(4)

	first := mc.Mask("TEST.SC4")
	second := mc.Mask("TEST.SC4")

	if &first[0] != &second[0] {
		t.Fatalf("expected the cached mask on the second lookup")
	}

	if !bytes.Equal(first, CreateMask(DeriveKey("TEST.SC4"))) {
		t.Fatalf("cached mask differs from a fresh one")
	}
}

func TestMaskCacheDepth(t *testing.T) {
	mc := NewMaskCache(2)

	for _, name := range []string{"A.SV4", "B.SV4", "C.SV4"} {
		mc.Mask(name)
	}

	if len(mc.maskCache) > 2 {
		t.Fatalf("cache depth: expected at most 2 entries, got %v", len(mc.maskCache))
	}
}

func TestMaskCacheDecodeFile(t *testing.T) {
	mc := NewMaskCache(4)
	raw := []byte{0x12, 0x34, 0x56, 0x78, 0x00, 0x00, 0x00, 0x00}

	plain, err := mc.DecodeFile("TEST.SC4", raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	direct, err := DecodeFile("TEST.SC4", raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !bytes.Equal(plain, direct) {
		t.Fatalf("cached decode: expected %#v, got %#v", direct, plain)
	}

	if _, err = mc.DecodeFile("TEST.SC4", raw[:3]); !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
}
