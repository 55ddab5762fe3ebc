package player

import "fmt"

// Role is the categorical role assigned to a player after all sources are merged.
type Role string

const (
	RoleBatsman      Role = "batsman"
	RoleBowler       Role = "bowler"
	RoleAllRounder   Role = "all-rounder"
	RoleWicketKeeper Role = "wicket-keeper"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

// UnknownCountry is used when the raw identity carries no country suffix.
const UnknownCountry = "Unknown"

// Player is one resolved identity. Name is the exact-match join key for every merge.
type Player struct {
	ID          int64
	Name        string
	Country     string
	PrimaryRole Role
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Country == "" {
		return fmt.Errorf("player country is required")
	}
	if p.PrimaryRole != "" {
		if _, ok := AllRoles[p.PrimaryRole]; !ok {
			return fmt.Errorf("invalid player role: %s", p.PrimaryRole)
		}
	}

	return nil
}

func ParseRole(v string) (Role, error) {
	role := Role(v)
	if _, ok := AllRoles[role]; !ok {
		return "", fmt.Errorf("invalid player role: %s", v)
	}
	return role, nil
}
