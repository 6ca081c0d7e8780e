package models

// MembershipType is the ordinal membership tier that gates profile visibility.
type MembershipType string

const (
	MembershipRegular  MembershipType = "regular"
	MembershipGold     MembershipType = "gold"
	MembershipPlatinum MembershipType = "platinum"
)

// MembershipRank maps a tier to its ordinal level. Unknown labels fall back
// to the lowest rank instead of erroring; tier values are validated upstream.
func MembershipRank(t MembershipType) int {
	switch t {
	case MembershipRegular:
		return 1
	case MembershipGold:
		return 2
	case MembershipPlatinum:
		return 3
	default:
		return 1
	}
}

// CanView reports whether a viewer tier is allowed to open a subject tier's
// detail. Equal tiers always grant access.
func CanView(viewer, subject MembershipType) bool {
	return MembershipRank(viewer) >= MembershipRank(subject)
}

// AccessibleTiers returns every tier a viewer may open, lowest first.
func AccessibleTiers(viewer MembershipType) []MembershipType {
	all := []MembershipType{MembershipRegular, MembershipGold, MembershipPlatinum}
	rank := MembershipRank(viewer)

	var tiers []MembershipType
	for _, t := range all {
		if MembershipRank(t) <= rank {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

// ValidMembership reports whether the label is one of the known tiers.
func ValidMembership(t MembershipType) bool {
	switch t {
	case MembershipRegular, MembershipGold, MembershipPlatinum:
		return true
	}
	return false
}
