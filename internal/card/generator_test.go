package card

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
	generator Generator
}

func (s *GeneratorTestSuite) SetupTest() {
	s.generator = New(&Config{Seed: 42})
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) TestGenerateExactSizeUniqueNumbers() {
	for _, size := range []int{20, 24, 25} {
		c, err := s.generator.Generate(size)
		s.Require().NoError(err, "size %d", size)

		s.Len(c.Numbers, size, "size %d", size)

		seen := make(map[int]bool)
		for _, n := range c.Numbers {
			s.False(seen[n], "size %d: duplicate number %d", size, n)
			seen[n] = true
		}
	}
}

func (s *GeneratorTestSuite) TestGenerateColumnRanges() {
	c, err := s.generator.Generate(24)
	s.Require().NoError(err)

	for r := 0; r < c.Rows; r++ {
		for col := 0; col < c.Cols; col++ {
			cell := c.Grid[r][col]
			if cell == nil {
				continue
			}
			low := col*15 + 1
			s.GreaterOrEqual(*cell, low, "cell (%d,%d)", r, col)
			s.LessOrEqual(*cell, low+14, "cell (%d,%d)", r, col)
		}
	}
}

func (s *GeneratorTestSuite) TestGenerateFreeCell() {
	for _, size := range []int{20, 24, 25} {
		c, err := s.generator.Generate(size)
		s.Require().NoError(err, "size %d", size)

		expectedRows := (size + 1 + 4) / 5
		s.Equal(expectedRows, c.Rows, "size %d", size)
		s.Equal(5, c.Cols, "size %d", size)
		s.Equal(expectedRows/2, c.CenterRow, "size %d", size)
		s.Equal(2, c.CenterCol, "size %d", size)

		// Exactly one free cell: the center cell is empty while every
		// card number appears in the grid exactly once.
		s.Nil(c.Grid[c.CenterRow][c.CenterCol], "size %d", size)

		gridNumbers := 0
		for r := 0; r < c.Rows; r++ {
			for col := 0; col < c.Cols; col++ {
				if c.Grid[r][col] != nil {
					gridNumbers++
				}
			}
		}
		s.Equal(size, gridNumbers, "size %d", size)
	}
}

func (s *GeneratorTestSuite) TestGenerateColumnsSortedTopToBottom() {
	c, err := s.generator.Generate(25)
	s.Require().NoError(err)

	for col := 0; col < c.Cols; col++ {
		prev := 0
		for r := 0; r < c.Rows; r++ {
			cell := c.Grid[r][col]
			if cell == nil {
				continue
			}
			s.Greater(*cell, prev, "column %d not ascending at row %d", col, r)
			prev = *cell
		}
	}
}

func (s *GeneratorTestSuite) TestGenerateCenterColumnNeverTakesRemainder() {
	// 22 = base 4 with remainder 2: the extras go to the first two
	// non-center columns, never the center.
	c, err := s.generator.Generate(22)
	s.Require().NoError(err)

	counts := make([]int, c.Cols)
	for r := 0; r < c.Rows; r++ {
		for col := 0; col < c.Cols; col++ {
			if c.Grid[r][col] != nil {
				counts[col]++
			}
		}
	}
	s.Equal([]int{5, 5, 4, 4, 4}, counts)
}

func (s *GeneratorTestSuite) TestGenerateFlatNumbersSorted() {
	c, err := s.generator.Generate(24)
	s.Require().NoError(err)

	for i := 1; i < len(c.Numbers); i++ {
		s.Less(c.Numbers[i-1], c.Numbers[i])
	}
}

func (s *GeneratorTestSuite) TestGenerateInvalidSize() {
	_, err := s.generator.Generate(0)
	s.Error(err)

	_, err = s.generator.Generate(-3)
	s.Error(err)

	// 76 would need 16 numbers in the first column's 15-value range
	_, err = s.generator.Generate(76)
	s.Error(err)
}

func (s *GeneratorTestSuite) TestGenerateMaxSize() {
	c, err := s.generator.Generate(75)
	s.Require().NoError(err)
	s.Len(c.Numbers, 75)
}
