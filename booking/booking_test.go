package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseType(t *testing.T) {
	bt, err := ParseType("bike")
	assert.NoError(t, err)
	assert.Equal(t, TypeBike, bt)

	bt, err = ParseType("tour")
	assert.NoError(t, err)
	assert.Equal(t, TypeTour, bt)

	_, err = ParseType("boat")
	assert.Error(t, err)
}

func TestType_MarshalJSON(t *testing.T) {
	got, err := TypeBike.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"bike"`, string(got))

	got, err = TypeTour.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"tour"`, string(got))
}

func TestType_Scan(t *testing.T) {
	var bt Type
	assert.NoError(t, bt.Scan("tour"))
	assert.Equal(t, TypeTour, bt)

	assert.NoError(t, bt.Scan([]byte("bike")))
	assert.Equal(t, TypeBike, bt)

	assert.Error(t, bt.Scan(42))
	assert.Error(t, bt.Scan("scooter"))
}

func TestType_Value(t *testing.T) {
	v, err := TypeTour.Value()
	assert.NoError(t, err)
	assert.Equal(t, "tour", v)
}
