package lib

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"

	log "github.com/sirupsen/logrus"
)

// GetRandomInt returns a crypto/rand integer in [min, max).
func GetRandomInt(min, max int) (int, error) {
	if max-min <= 0 {
		return 0, fmt.Errorf("tried to get random int between [0, %v)", max-min)
	}

	bg := big.NewInt(int64(max - min))
	n, err := rand.Int(rand.Reader, bg)
	if err != nil {
		return 0, err
	}

	return int(n.Int64()) + min, nil
}

// CryptoChooser draws from crypto/rand.
type CryptoChooser struct{}

func NewCryptoChooser() *CryptoChooser {
	return &CryptoChooser{}
}

// Choose panics if the system randomness source fails; there is no way to
// continue a round without it.
func (c *CryptoChooser) Choose(n int) int {
	i, err := GetRandomInt(0, n)
	if err != nil {
		log.Panicf("could not draw random int in [0, %v): %v", n, err)
	}

	return i
}

// SeededChooser replays the same draws for the same seed.
type SeededChooser struct {
	rng *mrand.Rand
	sync.Mutex
}

func NewSeededChooser(seed int64) *SeededChooser {
	return &SeededChooser{rng: mrand.New(mrand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

func (c *SeededChooser) Choose(n int) int {
	c.Lock()
	defer c.Unlock()

	return c.rng.IntN(n)
}
