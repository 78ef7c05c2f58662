package session

// Wallet is the default score sink: one integer balance that never goes negative.
type Wallet struct {
	balance int
}

func NewWallet(balance int) *Wallet {
	if balance < 0 {
		balance = 0
	}
	return &Wallet{balance: balance}
}

// AddScore applies delta unless the result would be negative.
func (w *Wallet) AddScore(delta int) bool {
	if w.balance+delta < 0 {
		return false
	}
	w.balance += delta
	return true
}

func (w *Wallet) Balance() int {
	return w.balance
}

// Latch is a single-shot game-over signal.
type Latch struct {
	fired  bool
	reason string
}

// Trigger fires the latch once; later calls return false.
func (l *Latch) Trigger(reason string) bool {
	if l.fired {
		return false
	}
	l.fired = true
	l.reason = reason
	return true
}

func (l *Latch) Fired() bool {
	return l.fired
}

// Reason returns what fired the latch, empty if it has not fired.
func (l *Latch) Reason() string {
	return l.reason
}
