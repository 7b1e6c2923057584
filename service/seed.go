package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"cloud.google.com/go/civil"
	"github.com/AnTengye/contractdash/model"
)

// DefaultSeedCount is the number of mock contracts synthesized at startup.
const DefaultSeedCount = 50

const (
	seedMaxValue = 100000
	seedYear     = 2022
)

// Seed synthesizes count mock contracts. A zero randomSeed uses the clock.
func Seed(count int, randomSeed uint64) []model.Contract {
	if count < 0 {
		count = 0
	}
	if randomSeed == 0 {
		randomSeed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(randomSeed, randomSeed>>1))

	contracts := make([]model.Contract, count)
	for i := range contracts {
		contracts[i] = model.Contract{
			ID:         model.FormatID(model.IDOffset + i),
			ClientName: fmt.Sprintf("Client %d", i+1),
			Status:     model.Statuses[rng.IntN(len(model.Statuses))],
			Value:      float64(rng.IntN(seedMaxValue)),
			StartDate: civil.Date{
				Year:  seedYear,
				Month: time.Month(rng.IntN(12) + 1),
				Day:   rng.IntN(28) + 1,
			},
		}
	}
	return contracts
}
