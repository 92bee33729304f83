package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
)

// Source выдаёт равномерные целые для розыгрышей.
type Source interface {
	// IntN возвращает равномерное целое из [min, max], границы включительно.
	IntN(min, max int) int
}

type cryptoSource struct{}

// NewCryptoSource — криптостойкий источник, безопасен для конкурентного
// использования. Используется в проде.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(min, max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(span(min, max)))
	if err != nil {
		// crypto/rand не падает на живой системе, молча деградировать
		// до предсказуемого генератора нельзя
		panic("rng: crypto source failed: " + err.Error())
	}
	return min + int(n.Int64())
}

type seededSource struct {
	r *mathrand.Rand
}

// NewSeededSource — детерминированный источник для тестов и симуляций.
// Не предназначен для конкурентного использования.
func NewSeededSource(seed int64) Source {
	return &seededSource{r: mathrand.New(mathrand.NewSource(seed))}
}

func (s *seededSource) IntN(min, max int) int {
	return min + s.r.Intn(int(span(min, max)))
}

func span(min, max int) int64 {
	if max < min {
		panic(fmt.Sprintf("rng: invalid bounds [%d, %d]", min, max))
	}
	return int64(max-min) + 1
}

// WeightedIndex выбирает индекс пропорционально весам: тянет одно целое
// из [0, total-1] и вычитает веса по порядку таблицы до ухода в минус.
// Неположительные веса пропускаются.
func WeightedIndex(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		panic("rng: no positive weights")
	}

	n := src.IntN(0, total-1)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		n -= w
		if n < 0 {
			return i
		}
	}
	panic("rng: weighted pick out of range")
}
