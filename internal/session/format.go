package session

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// WalletInfo is the display form of a wallet session.
type WalletInfo struct {
	Address      string
	ShortAddress string
	Balance      string
	Network      string
}

// Info renders the wallet for display.
func (w Wallet) Info() WalletInfo {
	return WalletInfo{
		Address:      w.Address,
		ShortAddress: ShortAddress(w.Address),
		Balance:      FormatBalance(w.BalanceWei, w.Currency),
		Network:      w.Network,
	}
}

// ShortAddress truncates a hex address for display: the first six characters,
// an ellipsis, the last four.
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// FormatBalance renders a wei amount in whole native-currency units with four
// decimal places, suffixed with the currency label when one is set.
func FormatBalance(wei *big.Int, currency string) string {
	value := new(big.Rat)
	if wei != nil {
		value.SetFrac(wei, big.NewInt(params.Ether))
	}
	out := value.FloatString(4)
	if currency == "" {
		return out
	}
	return out + " " + currency
}

// WeiFromFloat converts a native-currency amount to wei. Fractions below one
// wei are truncated.
func WeiFromFloat(amount float64) *big.Int {
	f := new(big.Float).SetFloat64(amount)
	f.Mul(f, big.NewFloat(params.Ether))
	wei, _ := f.Int(nil)
	return wei
}
