package card

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/parlorgames/bingohall/internal/models"
)

const (
	// columnCount is the traditional B-I-N-G-O layout width
	columnCount = 5

	// columnSpan is the size of each column's number range
	columnSpan = 15

	// centerColumn reserves one grid cell for the free marker
	centerColumn = 2
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/parlorgames/bingohall/internal/card Generator

// Generator produces bingo cards
type Generator interface {
	// Generate builds a card with the given number of numbers
	Generate(size int) (*models.Card, error)
}

// Config for the card generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randomGenerator implements Generator with uniform random sampling
type randomGenerator struct {
	random *rand.Rand
}

// New creates a new card generator
func New(cfg *Config) *randomGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randomGenerator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Generate builds a card of exactly size unique numbers laid out over five
// columns, each column drawn from its own 15-value range: B [1,15], I
// [16,30], N [31,45], G [46,60], O [61,75]. The grid holds one extra cell,
// the free cell, at the center of the N column.
func (g *randomGenerator) Generate(size int) (*models.Card, error) {
	counts, err := columnCounts(size)
	if err != nil {
		return nil, err
	}

	// Draw each column's numbers without replacement, sorted ascending.
	columns := make([][]int, columnCount)
	flat := make([]int, 0, size)
	for col := 0; col < columnCount; col++ {
		low := col*columnSpan + 1
		columns[col] = g.sampleRange(low, low+columnSpan-1, counts[col])
		flat = append(flat, columns[col]...)
	}
	sort.Ints(flat)

	// One extra grid cell for the free marker.
	rows := (size + 1 + columnCount - 1) / columnCount
	centerRow := rows / 2

	grid := make([][]*int, rows)
	for r := range grid {
		grid[r] = make([]*int, columnCount)
	}
	for col, nums := range columns {
		r := 0
		for i := range nums {
			// Skip over the free cell when filling the center column.
			if col == centerColumn && r == centerRow {
				r++
			}
			n := nums[i]
			grid[r][col] = &n
			r++
		}
	}

	return &models.Card{
		Numbers:   flat,
		Grid:      grid,
		Rows:      rows,
		Cols:      columnCount,
		CenterRow: centerRow,
		CenterCol: centerColumn,
	}, nil
}

// columnCounts splits size across the five columns. The center column never
// takes a remainder increment: it keeps the base count so its free cell fits.
// Any remainder goes to the non-center columns left to right, and a rounding
// shortfall lands on the last column.
func columnCounts(size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("card size must be positive, got %d", size)
	}

	base := size / columnCount
	remainder := size % columnCount

	counts := make([]int, columnCount)
	for col := range counts {
		counts[col] = base
	}
	for _, col := range []int{0, 1, 3, 4} {
		if remainder == 0 {
			break
		}
		counts[col]++
		remainder--
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total < size {
		counts[columnCount-1] += size - total
	}

	for col, c := range counts {
		if c > columnSpan {
			return nil, fmt.Errorf("card size %d needs %d numbers in column %d, range only holds %d", size, c, col, columnSpan)
		}
	}

	return counts, nil
}

// sampleRange draws count unique values from [low, high] and returns them
// sorted ascending. Rejection sampling terminates because count never
// exceeds the range size.
func (g *randomGenerator) sampleRange(low, high, count int) []int {
	seen := make(map[int]bool, count)
	nums := make([]int, 0, count)
	for len(nums) < count {
		n := low + g.random.Intn(high-low+1)
		if seen[n] {
			continue
		}
		seen[n] = true
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
