package starkgate

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

// selectorMask keeps the low 250 bits of a keccak256 digest, per the
// network's entry-point selector derivation.
var selectorMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// SelectorFromName derives the entry-point selector for a function name:
// the keccak256 hash of the UTF-8 name, truncated to its low 250 bits.
func SelectorFromName(name string) Felt {
	digest := crypto.Keccak256([]byte(name))
	v := new(big.Int).SetBytes(digest)
	v.And(v, selectorMask)
	return Felt{value: v}
}
