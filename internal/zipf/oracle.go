// Package zipf provides word commonness scores on the Zipf scale, where 0
// means never observed and roughly 7 is the most frequent English words.
// Every vocabulary metric depends on these lookups, so the oracle is an
// injectable interface: production code uses a frequency table loaded from
// disk, tests use a fixed stub.
package zipf

// Oracle answers word-frequency lookups. Implementations must be pure and
// deterministic: the same word always yields the same score.
type Oracle interface {
	// Frequency returns the Zipf-scale frequency of word. Words absent from
	// the underlying vocabulary return 0.
	Frequency(word string) float64
}

// Func adapts a plain function to the Oracle interface.
type Func func(word string) float64

// Frequency implements Oracle.
func (f Func) Frequency(word string) float64 {
	return f(word)
}
