package session

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Wallet is the active wallet session. At most one is connected at a time;
// connecting again replaces the previous session.
type Wallet struct {
	Address     string // EIP-55 checksummed
	BalanceWei  *big.Int
	Network     string // chain id, e.g. "1"
	Currency    string // native currency label, e.g. "ETH"
	ConnectedAt time.Time
}

// Store guards the zero-or-one wallet session.
type Store struct {
	mu     sync.RWMutex
	wallet *Wallet
	nowFn  func() time.Time
}

// NewStore constructs an empty session store.
func NewStore() *Store {
	return &Store{nowFn: time.Now}
}

// Connect validates the address, checksums it, and stores the wallet.
func (s *Store) Connect(address string, balanceWei *big.Int, network, currency string) (Wallet, error) {
	if !common.IsHexAddress(address) {
		return Wallet{}, fmt.Errorf("session: invalid wallet address %q", address)
	}
	w := Wallet{
		Address:     common.HexToAddress(address).Hex(),
		BalanceWei:  new(big.Int),
		Network:     network,
		Currency:    currency,
		ConnectedAt: s.nowFn(),
	}
	if balanceWei != nil {
		w.BalanceWei.Set(balanceWei)
	}
	s.mu.Lock()
	s.wallet = &w
	s.mu.Unlock()
	return w, nil
}

// Disconnect clears the session. Clearing an empty store is a no-op.
func (s *Store) Disconnect() {
	s.mu.Lock()
	s.wallet = nil
	s.mu.Unlock()
}

// Connected reports whether a wallet session is active.
func (s *Store) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wallet != nil
}

// Active returns a copy of the current wallet session.
func (s *Store) Active() (Wallet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wallet == nil {
		return Wallet{}, false
	}
	w := *s.wallet
	w.BalanceWei = new(big.Int).Set(s.wallet.BalanceWei)
	return w, true
}
