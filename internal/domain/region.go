package domain

import "strings"

// RegionLevel identifica um nível da hierarquia geográfica.
type RegionLevel string

const (
	LevelDepartment   RegionLevel = "departments"
	LevelMunicipality RegionLevel = "municipalities"
	LevelCommune      RegionLevel = "communes"
	LevelNeighborhood RegionLevel = "neighborhoods"
)

var regionParents = map[RegionLevel]RegionLevel{
	LevelMunicipality: LevelDepartment,
	LevelCommune:      LevelMunicipality,
	LevelNeighborhood: LevelCommune,
}

func ParseRegionLevel(s string) (RegionLevel, error) {
	l := RegionLevel(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case LevelDepartment, LevelMunicipality, LevelCommune, LevelNeighborhood:
		return l, nil
	}
	return "", ErrInvalidRegionLevel
}

// Parent retorna o nível pai; departamentos não têm pai.
func (l RegionLevel) Parent() (RegionLevel, bool) {
	p, ok := regionParents[l]
	return p, ok
}

// Region é um departamento, município, comuna ou bairro.
type Region struct {
	ID       int64
	Level    RegionLevel
	Name     string
	ParentID *int64
}

func (r *Region) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidRegion
	}
	_, needsParent := r.Level.Parent()
	if needsParent && r.ParentID == nil {
		return ErrInvalidRegion
	}
	if !needsParent && r.ParentID != nil {
		return ErrInvalidRegion
	}
	return nil
}
