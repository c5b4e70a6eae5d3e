package distributor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-request-service/internal/models"
)

func TestResolvePrefix(t *testing.T) {
	d := Resolve("PKA0020KYSSDPKK")
	require.NotNil(t, d)
	assert.Equal(t, "best-choice-international", d.ID)

	d = Resolve("6009688702712")
	require.NotNil(t, d)
	assert.Equal(t, "distributor-3", d.ID)
	assert.Equal(t, "Happy Dog Inc", d.Office.Name)
	assert.Equal(t, "Nirvasian Fullfillment Centre", d.Delivery.Name)
}

func TestResolveCaseInsensitive(t *testing.T) {
	d := Resolve("pka0020kyssdpkk")
	require.NotNil(t, d)
	assert.Equal(t, "best-choice-international", d.ID)
}

func TestResolveUnknown(t *testing.T) {
	assert.Nil(t, Resolve("ZZZ-UNKNOWN"))
	assert.Nil(t, Resolve(""))
}

func TestResolveForItemsFirstMatchWins(t *testing.T) {
	items := []models.LineItem{
		{ProductID: "UNMATCHED-CODE"},
		{ProductID: "6009688702583"}, // distributor-3
		{ProductID: "PKA0020KYSSDPKK"},
	}

	d := ResolveForItems(items)
	require.NotNil(t, d)
	assert.Equal(t, "distributor-3", d.ID)

	assert.Nil(t, ResolveForItems([]models.LineItem{{ProductID: "NOPE"}}))
	assert.Nil(t, ResolveForItems(nil))
}

func TestDistinct(t *testing.T) {
	items := []models.LineItem{
		{ProductID: "PKA0020KYSSDPKK"},
		{ProductID: "6009688702583"},
		{ProductID: "PKI0020KYSSDPKK"},
	}
	assert.Equal(t, []string{"best-choice-international", "distributor-3"}, Distinct(items))
}
