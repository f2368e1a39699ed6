package seeder

import (
	"math/rand"
	"time"
)

type DataGenerator struct {
	rand *rand.Rand
}

func NewDataGenerator() *DataGenerator {
	return NewSeededDataGenerator(time.Now().UnixNano())
}

// NewSeededDataGenerator returns a generator with a fixed PRNG seed so
// a run can be reproduced.
func NewSeededDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Uniform returns a float drawn uniformly from [min, max).
func (g *DataGenerator) Uniform(min, max float64) float64 {
	return min + g.rand.Float64()*(max-min)
}

// IntBetween returns an integer drawn uniformly from [min, max].
func (g *DataGenerator) IntBetween(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

func (g *DataGenerator) Bool() bool {
	return g.rand.Intn(2) == 1
}

func (g *DataGenerator) Choice(options []string) string {
	return options[g.rand.Intn(len(options))]
}

// Datetime returns an RFC 3339 UTC timestamp up to a million seconds in
// the past.
func (g *DataGenerator) Datetime() string {
	offset := time.Duration(g.rand.Intn(1_000_000)) * time.Second
	return time.Now().UTC().Add(-offset).Format(time.RFC3339)
}
