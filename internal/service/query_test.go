package service_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superheroes-api/internal/domain"
	"superheroes-api/internal/service"
)

func TestParseHeroFilter(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		filter, err := service.ParseHeroFilter(url.Values{})
		require.NoError(t, err)
		assert.Equal(t, domain.HeroFilter{}, filter)
	})

	t.Run("all parameters", func(t *testing.T) {
		q, _ := url.ParseQuery("name=+Clark+&city=Metropolis&isActive=false&powerLevel=10&limit=5&offset=0")

		filter, err := service.ParseHeroFilter(q)
		require.NoError(t, err)
		require.NotNil(t, filter.Name)
		assert.Equal(t, "Clark", *filter.Name)
		assert.Equal(t, "Metropolis", *filter.City)
		assert.False(t, *filter.IsActive)
		assert.Equal(t, 10, *filter.PowerLevel)
		assert.Equal(t, 5, *filter.Limit)
		assert.Equal(t, 0, *filter.Offset)
	})

	t.Run("blank text filters are omitted", func(t *testing.T) {
		q, _ := url.ParseQuery("name=%20%20&city=")

		filter, err := service.ParseHeroFilter(q)
		require.NoError(t, err)
		assert.Nil(t, filter.Name)
		assert.Nil(t, filter.City)
	})

	t.Run("empty numeric values are omitted", func(t *testing.T) {
		q, _ := url.ParseQuery("powerLevel=&limit=&offset=")

		filter, err := service.ParseHeroFilter(q)
		require.NoError(t, err)
		assert.Nil(t, filter.PowerLevel)
		assert.Nil(t, filter.Limit)
		assert.Nil(t, filter.Offset)
	})
}

func TestParseHeroFilter_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"isActive not boolean", "isActive=yes", "isActive"},
		{"isActive wrong case", "isActive=TRUE", "isActive"},
		{"isActive empty", "isActive=", "isActive"},
		{"powerLevel zero", "powerLevel=0", "powerLevel"},
		{"powerLevel eleven", "powerLevel=11", "powerLevel"},
		{"powerLevel trailing garbage", "powerLevel=5abc", "powerLevel"},
		{"limit zero", "limit=0", "limit"},
		{"limit too large", "limit=101", "limit"},
		{"limit not a number", "limit=ten", "limit"},
		{"offset negative", "offset=-1", "offset"},
		{"offset fractional", "offset=1.5", "offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = service.ParseHeroFilter(q)
			require.Error(t, err)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestParseHeroFilter_ReportsEveryInvalidField(t *testing.T) {
	q, _ := url.ParseQuery("isActive=maybe&limit=500&offset=-3")

	_, err := service.ParseHeroFilter(q)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 3)
	assert.Equal(t, "invalid boolean value", ve.Fields["isActive"])
}
