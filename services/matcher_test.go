package services

import (
	"testing"

	"github.com/ava1313/Portfolio-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestMatchBusinessEmptyQueryMatchesEverything(t *testing.T) {
	businesses := []models.BusinessProfile{
		{},
		{Category: "Εστιατόρια", Location: "Αθήνα, Ελλάδα", BusinessType: "food"},
		{Name: "no fields set besides name"},
	}

	for _, business := range businesses {
		assert.True(t, MatchBusiness(business, models.BusinessQuery{}))
	}
}

func TestMatchBusinessCategorySubstring(t *testing.T) {
	business := models.BusinessProfile{Category: "Εστιατόρια"}

	assert.True(t, MatchBusiness(business, models.BusinessQuery{Category: "εστιατ"}))
	assert.True(t, MatchBusiness(business, models.BusinessQuery{Category: "ΕΣΤΙΑΤΟΡΙΑ"}))
	assert.False(t, MatchBusiness(business, models.BusinessQuery{Category: "καφετέριες"}))
}

func TestMatchBusinessTypeSubstring(t *testing.T) {
	business := models.BusinessProfile{BusinessType: "entertainment"}

	assert.True(t, MatchBusiness(business, models.BusinessQuery{BusinessType: "entertain"}))
	assert.False(t, MatchBusiness(business, models.BusinessQuery{BusinessType: "retail"}))
}

func TestMatchBusinessLocationTokens(t *testing.T) {
	business := models.BusinessProfile{Location: "Αθήνα, Ελλάδα"}

	assert.True(t, MatchBusiness(business, models.BusinessQuery{Location: "αθηνα"}))
	assert.True(t, MatchBusiness(business, models.BusinessQuery{Location: "Ελλάδα Αθήνα"}),
		"token order must not matter")

	other := models.BusinessProfile{Location: "Θεσσαλονίκη"}
	assert.False(t, MatchBusiness(other, models.BusinessQuery{Location: "αθηνα"}))
}

func TestMatchBusinessLocationPolicies(t *testing.T) {
	business := models.BusinessProfile{Location: "Αθήνας, Ελλάδα"}

	// Substring policy covers a query token that is a prefix of a business token
	assert.True(t, MatchBusiness(business, models.BusinessQuery{
		Location:       "αθηνα",
		LocationPolicy: models.LocationTokenSubstring,
	}))

	// Exact policy requires an equal token
	assert.False(t, MatchBusiness(business, models.BusinessQuery{
		Location:       "αθηνα",
		LocationPolicy: models.LocationTokenExact,
	}))
	assert.True(t, MatchBusiness(business, models.BusinessQuery{
		Location:       "Αθήνας",
		LocationPolicy: models.LocationTokenExact,
	}))
}

func TestMatchBusinessMissingFields(t *testing.T) {
	empty := models.BusinessProfile{}

	assert.False(t, MatchBusiness(empty, models.BusinessQuery{Category: "food"}))
	assert.False(t, MatchBusiness(empty, models.BusinessQuery{Location: "αθηνα"}))
	assert.False(t, MatchBusiness(empty, models.BusinessQuery{BusinessType: "retail"}))
}

func TestMatchBusinessCombinedAnd(t *testing.T) {
	business := models.BusinessProfile{
		Category:     "Εστιατόρια",
		Location:     "Αθήνα, Ελλάδα",
		BusinessType: "food",
	}

	assert.True(t, MatchBusiness(business, models.BusinessQuery{
		Category: "εστιατ", Location: "αθηνα", BusinessType: "food",
	}))
	// One failing predicate fails the whole match
	assert.False(t, MatchBusiness(business, models.BusinessQuery{
		Category: "εστιατ", Location: "θεσσαλονικη", BusinessType: "food",
	}))
}
