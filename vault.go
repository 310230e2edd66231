package evmmath

import (
	"fmt"
	"math/big"
)

// Vault converts between assets and shares of a tokenized vault using
// virtual offsets, as in ERC-4626 vaults protected against donation attacks:
//
//	assets = shares * (totalAssets + VirtualAssets) / (totalShares + VirtualShares)
//	shares = assets * (totalShares + VirtualShares) / (totalAssets + VirtualAssets)
//
// Nil offsets are treated as 0.
type Vault struct {
	VirtualAssets *big.Int
	VirtualShares *big.Int
	// Mode is the rounding mode of both conversions. Vaults usually round
	// deposits with Down and withdrawals with Up, so that rounding always
	// favors the vault.
	Mode RoundingMode
}

// ToAssets returns the amount of assets that corresponds to shares.
//
// ToAssets returns an error if totalShares + VirtualShares is 0.
func (v Vault) ToAssets(shares, totalAssets, totalShares *big.Int) (*big.Int, error) {
	num := offset(totalAssets, v.VirtualAssets)
	den := offset(totalShares, v.VirtualShares)
	z, err := MulDiv(shares, num, den, v.Mode)
	if err != nil {
		return nil, fmt.Errorf("converting %v shares to assets: %w", shares, err)
	}
	return z, nil
}

// ToShares returns the amount of shares that corresponds to assets.
//
// ToShares returns an error if totalAssets + VirtualAssets is 0.
func (v Vault) ToShares(assets, totalAssets, totalShares *big.Int) (*big.Int, error) {
	num := offset(totalShares, v.VirtualShares)
	den := offset(totalAssets, v.VirtualAssets)
	z, err := MulDiv(assets, num, den, v.Mode)
	if err != nil {
		return nil, fmt.Errorf("converting %v assets to shares: %w", assets, err)
	}
	return z, nil
}

// offset returns total + virtual.
func offset(total, virtual *big.Int) *big.Int {
	z := new(big.Int).Set(total)
	if virtual != nil {
		z.Add(z, virtual)
	}
	return z
}
