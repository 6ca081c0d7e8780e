package models

import (
	"testing"

	"github.com/matryer/is"
)

func TestMembershipRank(t *testing.T) {
	is := is.New(t)

	is.Equal(MembershipRank(MembershipRegular), 1)
	is.Equal(MembershipRank(MembershipGold), 2)
	is.Equal(MembershipRank(MembershipPlatinum), 3)

	// Unknown labels fall back to the lowest rank.
	is.Equal(MembershipRank(MembershipType("diamond")), 1)
	is.Equal(MembershipRank(MembershipType("")), 1)
}

func TestCanView(t *testing.T) {
	is := is.New(t)

	is.True(CanView(MembershipRegular, MembershipRegular))
	is.True(CanView(MembershipGold, MembershipRegular))
	is.True(CanView(MembershipGold, MembershipGold))
	is.True(CanView(MembershipPlatinum, MembershipGold))
	is.True(CanView(MembershipPlatinum, MembershipPlatinum))

	is.True(!CanView(MembershipRegular, MembershipGold))
	is.True(!CanView(MembershipRegular, MembershipPlatinum))
	is.True(!CanView(MembershipGold, MembershipPlatinum))

	// Unknown tiers are treated as the lowest on both sides.
	is.True(CanView(MembershipType("diamond"), MembershipRegular))
	is.True(!CanView(MembershipType("diamond"), MembershipGold))
}

func TestAccessibleTiers(t *testing.T) {
	is := is.New(t)

	is.Equal(AccessibleTiers(MembershipRegular), []MembershipType{MembershipRegular})
	is.Equal(AccessibleTiers(MembershipGold), []MembershipType{MembershipRegular, MembershipGold})
	is.Equal(AccessibleTiers(MembershipPlatinum), []MembershipType{MembershipRegular, MembershipGold, MembershipPlatinum})
}

func TestValidMembership(t *testing.T) {
	is := is.New(t)

	is.True(ValidMembership(MembershipRegular))
	is.True(ValidMembership(MembershipGold))
	is.True(ValidMembership(MembershipPlatinum))
	is.True(!ValidMembership(MembershipType("diamond")))
	is.True(!ValidMembership(MembershipType("")))
}
