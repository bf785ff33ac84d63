package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lekded/internal/models"
)

func TestReduceDigits(t *testing.T) {
	t.Run("reduces to a single digit", func(t *testing.T) {
		assert.Equal(t, 3, reduceDigits(39))
		assert.Equal(t, 9, reduceDigits(9))
		assert.Equal(t, 1, reduceDigits(100))
	})

	t.Run("stops on master numbers when asked", func(t *testing.T) {
		assert.Equal(t, 11, reduceDigits(29, 11, 22))
		assert.Equal(t, 22, reduceDigits(994, 11, 22))
	})

	t.Run("ignores master numbers without a stop set", func(t *testing.T) {
		assert.Equal(t, 2, reduceDigits(29))
		assert.Equal(t, 4, reduceDigits(994))
	})
}

func TestNumerologyService_Derive(t *testing.T) {
	service := NewNumerologyService()

	t.Run("life path from the worked example", func(t *testing.T) {
		reading, err := service.Derive(1, 1, 2000)
		require.NoError(t, err)
		// digit stream "112000" sums to 4
		assert.Equal(t, 4, reading.Numerology.LifePath)
	})

	t.Run("candidate lists for 15 Aug 1987", func(t *testing.T) {
		reading, err := service.Derive(15, 8, 1987)
		require.NoError(t, err)

		assert.Equal(t, 3, reading.Numerology.LifePath)
		assert.Equal(t, []string{"15", "08", "87", "18", "07", "23"}, reading.Numerology.TwoDigit)
		assert.Equal(t, []string{"158", "087", "108", "110"}, reading.Numerology.ThreeDigit)
	})

	t.Run("Buddhist year normalizes to Gregorian", func(t *testing.T) {
		buddhist, err := service.Derive(15, 8, 2530)
		require.NoError(t, err)
		gregorian, err := service.Derive(15, 8, 1987)
		require.NoError(t, err)
		assert.Equal(t, gregorian, buddhist)
	})

	t.Run("master numbers survive reduction", func(t *testing.T) {
		reading, err := service.Derive(19, 9, 1900)
		require.NoError(t, err)
		// 1+9+9+1+9+0+0 = 29 -> 11, preserved
		assert.Equal(t, 11, reading.Numerology.LifePath)
	})

	t.Run("life path stays in range across many dates", func(t *testing.T) {
		valid := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true, 11: true, 22: true}
		for year := 1950; year <= 2030; year += 7 {
			for month := 1; month <= 12; month++ {
				reading, err := service.Derive(28, month, year)
				require.NoError(t, err)
				assert.True(t, valid[reading.Numerology.LifePath],
					"life path %d out of range for 28/%d/%d", reading.Numerology.LifePath, month, year)
			}
		}
	})

	t.Run("candidate shape invariants", func(t *testing.T) {
		reading, err := service.Derive(7, 12, 1995)
		require.NoError(t, err)

		num := reading.Numerology
		assert.LessOrEqual(t, len(num.TwoDigit), 6)
		assert.LessOrEqual(t, len(num.ThreeDigit), 4)
		seenTwo := map[string]bool{}
		for _, v := range num.TwoDigit {
			assert.Len(t, v, 2)
			assert.False(t, seenTwo[v], "duplicate %s", v)
			seenTwo[v] = true
		}
		seenThree := map[string]bool{}
		for _, v := range num.ThreeDigit {
			assert.Len(t, v, 3)
			assert.False(t, seenThree[v], "duplicate %s", v)
			seenThree[v] = true
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first, err := service.Derive(15, 8, 2530)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := service.Derive(15, 8, 2530)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("zodiac and day tables resolve", func(t *testing.T) {
		reading, err := service.Derive(15, 8, 1987)
		require.NoError(t, err)

		require.NotNil(t, reading.Zodiac)
		assert.Equal(t, "สิงห์", reading.Zodiac.Name)
		// 15 Aug 1987 was a Saturday.
		assert.Equal(t, "เสาร์", reading.DayName)
		assert.Equal(t, "ดาวเสาร์", reading.Planet)
		assert.Equal(t, []string{"79", "97", "07"}, reading.DayNumbers)
		assert.NotEmpty(t, reading.LifePathMeaning)
	})

	t.Run("rejects out-of-range fields", func(t *testing.T) {
		var verr *models.ValidationError
		_, err := service.Derive(15, 13, 1987)
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "month", verr.Field)

		_, err = service.Derive(0, 5, 1987)
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "day", verr.Field)
	})

	t.Run("rejects impossible composite dates", func(t *testing.T) {
		var verr *models.ValidationError
		_, err := service.Derive(30, 2, 2000)
		require.ErrorAs(t, err, &verr)

		_, err = service.Derive(31, 4, 2000)
		require.ErrorAs(t, err, &verr)

		// 29 Feb exists in leap years only.
		_, err = service.Derive(29, 2, 2024)
		require.NoError(t, err)
		_, err = service.Derive(29, 2, 2023)
		require.ErrorAs(t, err, &verr)
	})
}

func TestZodiacFor(t *testing.T) {
	t.Run("covers every day of the year", func(t *testing.T) {
		daysIn := [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
		for month := 1; month <= 12; month++ {
			for day := 1; day <= daysIn[month]; day++ {
				assert.NotNil(t, zodiacFor(month, day), "no sign for %d/%d", day, month)
			}
		}
	})

	t.Run("year boundary belongs to Capricorn", func(t *testing.T) {
		assert.Equal(t, "มังกร", zodiacFor(12, 25).Name)
		assert.Equal(t, "มังกร", zodiacFor(1, 10).Name)
		assert.Equal(t, "กุมภ์", zodiacFor(1, 20).Name)
	})
}
