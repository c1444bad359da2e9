package services

import (
	"strings"

	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/utils"
)

// MatchBusiness reports whether a listing satisfies a free-text directory
// query. The three field predicates are combined with AND; an empty query
// field does not filter.
func MatchBusiness(business models.BusinessProfile, query models.BusinessQuery) bool {
	return matchCategory(business.Category, query.Category) &&
		matchBusinessType(business.BusinessType, query.BusinessType) &&
		matchLocation(business.Location, query.Location, query.LocationPolicy)
}

// matchCategory is a case- and accent-insensitive substring check
func matchCategory(category, queried string) bool {
	if queried == "" {
		return true
	}
	return strings.Contains(utils.Fold(category), utils.Fold(queried))
}

func matchBusinessType(businessType, queried string) bool {
	if queried == "" {
		return true
	}
	return strings.Contains(utils.Fold(businessType), utils.Fold(queried))
}

// matchLocation tokenizes both sides and requires every query token to be
// covered by at least one business location token. Coverage tolerates token
// order and extra business-side tokens, so a partial address still matches.
func matchLocation(location, queried string, policy models.LocationMatchPolicy) bool {
	queryTokens := utils.Normalize(queried)
	if len(queryTokens) == 0 {
		return true
	}

	businessTokens := utils.Normalize(location)

	for _, queryToken := range queryTokens {
		if !tokenCovered(queryToken, businessTokens, policy) {
			return false
		}
	}
	return true
}

func tokenCovered(queryToken string, businessTokens []string, policy models.LocationMatchPolicy) bool {
	for _, businessToken := range businessTokens {
		if policy == models.LocationTokenExact {
			if businessToken == queryToken {
				return true
			}
			continue
		}
		if strings.Contains(businessToken, queryToken) {
			return true
		}
	}
	return false
}
