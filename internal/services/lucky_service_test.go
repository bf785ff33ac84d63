package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuckyService_Draw(t *testing.T) {
	t.Run("empty pool falls back to repdigits", func(t *testing.T) {
		service := NewLuckyService(rand.New(rand.NewSource(1)))
		repdigits := map[string]bool{}
		for _, v := range defaultPool {
			repdigits[v] = true
		}
		for i := 0; i < 1000; i++ {
			assert.True(t, repdigits[service.Draw(nil)])
		}
	})

	t.Run("duplicates bias the draw", func(t *testing.T) {
		service := NewLuckyService(rand.New(rand.NewSource(7)))
		pool := []string{"11", "11", "11", "22"}
		counts := map[string]int{}
		for i := 0; i < 2000; i++ {
			counts[service.Draw(pool)]++
		}
		assert.Equal(t, 2000, counts["11"]+counts["22"])
		assert.Greater(t, counts["11"], counts["22"])
	})

	t.Run("single-element pool always wins", func(t *testing.T) {
		service := NewLuckyService(rand.New(rand.NewSource(3)))
		for i := 0; i < 50; i++ {
			assert.Equal(t, "53", service.Draw([]string{"53"}))
		}
	})
}
