// Package catalog provides the static project, unit and FAQ records the
// assistant answers questions about.
package catalog

import (
	"fmt"
	"strings"
)

// Availability represents whether a unit can still be booked.
type Availability string

const (
	Available Availability = "available"
	Pending   Availability = "pending"
	Sold      Availability = "sold"
)

// ValidAvailabilities is the set of allowed availability states.
var ValidAvailabilities = []Availability{Available, Pending, Sold}

// IsValid checks if an availability state is recognized.
func (a Availability) IsValid() bool {
	for _, v := range ValidAvailabilities {
		if a == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the availability state.
func (a Availability) Label() string {
	switch a {
	case Available:
		return "Available"
	case Pending:
		return "Pending"
	case Sold:
		return "Sold"
	default:
		return string(a)
	}
}

// Record is any catalog record that can be attached to an answer.
type Record interface {
	// Kind is "project", "unit" or "faq".
	Kind() string
	// OwnerID is the id of the project the record belongs to.
	OwnerID() string
}

// LabeledValue is one entry of an ordered label/value list.
type LabeledValue struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Distance is the travel time from a project to a landmark.
type Distance struct {
	Place string `yaml:"place" json:"place"`
	Time  string `yaml:"time" json:"time"`
}

// Transport describes road access and nearby landmarks.
type Transport struct {
	Roads     []string   `yaml:"roads" json:"roads"`
	Distances []Distance `yaml:"distances" json:"distances"`
}

// Amenities groups a project's amenities by category.
type Amenities struct {
	Community    []string `yaml:"community" json:"community,omitempty"`
	Health       []string `yaml:"health" json:"health,omitempty"`
	Recreational []string `yaml:"recreational" json:"recreational,omitempty"`
	Convenience  []string `yaml:"convenience" json:"convenience,omitempty"`
}

// All returns every amenity in category order.
func (a *Amenities) All() []string {
	if a == nil {
		return nil
	}
	var all []string
	all = append(all, a.Community...)
	all = append(all, a.Health...)
	all = append(all, a.Recreational...)
	all = append(all, a.Convenience...)
	return all
}

// ProjectSpecifications lists building-wide construction specifications.
type ProjectSpecifications struct {
	Flooring   []LabeledValue `yaml:"flooring" json:"flooring,omitempty"`
	Doors      []LabeledValue `yaml:"doors" json:"doors,omitempty"`
	Windows    string         `yaml:"windows" json:"windows,omitempty"`
	Electrical []string       `yaml:"electrical" json:"electrical,omitempty"`
	Toilets    []string       `yaml:"toilets" json:"toilets,omitempty"`
	Kitchen    []string       `yaml:"kitchen" json:"kitchen,omitempty"`
	Color      []LabeledValue `yaml:"color" json:"color,omitempty"`
}

// Project represents a real-estate project.
type Project struct {
	ID                    string                 `yaml:"id" json:"id"`
	Name                  string                 `yaml:"name" json:"name"`
	Location              string                 `yaml:"location" json:"location"`
	Type                  string                 `yaml:"type" json:"type,omitempty"`
	Status                string                 `yaml:"status" json:"status,omitempty"`
	Description           string                 `yaml:"description" json:"description,omitempty"`
	Features              []string               `yaml:"features" json:"features,omitempty"`
	Developer             string                 `yaml:"developer" json:"developer,omitempty"`
	Certification         string                 `yaml:"certification" json:"certification,omitempty"`
	LandArea              string                 `yaml:"land_area" json:"land_area,omitempty"`
	OpenSpace             string                 `yaml:"open_space" json:"open_space,omitempty"`
	Towers                int                    `yaml:"towers" json:"towers,omitempty"`
	Storeys               int                    `yaml:"storeys" json:"storeys,omitempty"`
	TowerLayout           string                 `yaml:"tower_layout" json:"tower_layout,omitempty"`
	DistanceBetweenTowers string                 `yaml:"distance_between_towers" json:"distance_between_towers,omitempty"`
	Parking               string                 `yaml:"parking" json:"parking,omitempty"`
	CompletionDate        string                 `yaml:"completion_date" json:"completion_date,omitempty"`
	FullAddress           string                 `yaml:"full_address" json:"full_address,omitempty"`
	ReraNumber            string                 `yaml:"rera_number" json:"rera_number,omitempty"`
	Website               string                 `yaml:"website" json:"website,omitempty"`
	Lifts                 string                 `yaml:"lifts" json:"lifts,omitempty"`
	RefugeAreaFloors      string                 `yaml:"refuge_area_floors" json:"refuge_area_floors,omitempty"`
	Transport             *Transport             `yaml:"transport" json:"transport,omitempty"`
	Amenities             *Amenities             `yaml:"amenities" json:"amenities,omitempty"`
	Specifications        *ProjectSpecifications `yaml:"specifications" json:"specifications,omitempty"`
}

// Kind implements Record.
func (p *Project) Kind() string { return "project" }

// OwnerID implements Record.
func (p *Project) OwnerID() string { return p.ID }

// UnitLayout describes the floor plan of a unit.
type UnitLayout struct {
	CarpetArea        string         `yaml:"carpet_area" json:"carpet_area,omitempty"`
	SuperBuiltUpArea  string         `yaml:"super_built_up_area" json:"super_built_up_area,omitempty"`
	BalconyAccess     string         `yaml:"balcony_access" json:"balcony_access,omitempty"`
	UpperFloorTerrace string         `yaml:"upper_floor_terrace" json:"upper_floor_terrace,omitempty"`
	Rooms             []LabeledValue `yaml:"rooms" json:"rooms,omitempty"`
}

// UnitSpecifications lists unit-level finishes.
type UnitSpecifications struct {
	Flooring   []string `yaml:"flooring" json:"flooring,omitempty"`
	Walls      []string `yaml:"walls" json:"walls,omitempty"`
	Electrical []string `yaml:"electrical" json:"electrical,omitempty"`
	Doors      []string `yaml:"doors" json:"doors,omitempty"`
	Bathroom   []string `yaml:"bathroom" json:"bathroom,omitempty"`
	Special    []string `yaml:"special" json:"special,omitempty"`
}

// Unit represents a single apartment or penthouse in a project.
type Unit struct {
	ID             string              `yaml:"id" json:"id"`
	ProjectID      string              `yaml:"project_id" json:"project_id"`
	Type           string              `yaml:"type" json:"type"`
	Bedrooms       int                 `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms      int                 `yaml:"bathrooms" json:"bathrooms"`
	Price          int64               `yaml:"price" json:"price"` // rupees
	Area           int                 `yaml:"area" json:"area"`   // sq ft
	Availability   Availability        `yaml:"availability" json:"availability"`
	Features       []string            `yaml:"features" json:"features,omitempty"`
	UnitNumber     string              `yaml:"unit_number" json:"unit_number,omitempty"`
	ImageURL       string              `yaml:"image_url" json:"image_url,omitempty"`
	Layout         *UnitLayout         `yaml:"layout" json:"layout,omitempty"`
	Specifications *UnitSpecifications `yaml:"specifications" json:"specifications,omitempty"`
}

// Kind implements Record.
func (u *Unit) Kind() string { return "unit" }

// OwnerID implements Record.
func (u *Unit) OwnerID() string { return u.ProjectID }

// HasFeature reports whether the unit lists the feature, ignoring case.
func (u *Unit) HasFeature(feature string) bool {
	for _, f := range u.Features {
		if equalFold(f, feature) {
			return true
		}
	}
	return false
}

// FAQ is a canned question and answer for a project.
type FAQ struct {
	ID        string   `yaml:"id" json:"id"`
	ProjectID string   `yaml:"project_id" json:"project_id"`
	Question  string   `yaml:"question" json:"question"`
	Answer    string   `yaml:"answer" json:"answer"`
	Tags      []string `yaml:"tags" json:"tags"`
}

// Kind implements Record.
func (f *FAQ) Kind() string { return "faq" }

// OwnerID implements Record.
func (f *FAQ) OwnerID() string { return f.ProjectID }

// FilterTag is a quick-filter button: a label that expands to a query.
type FilterTag struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	Query       string `yaml:"query" json:"query"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// FormatIndianPrice formats a rupee amount as crores, lakhs or grouped rupees.
func FormatIndianPrice(price int64) string {
	switch {
	case price >= 10000000:
		return fmt.Sprintf("₹%.2f Cr", float64(price)/10000000)
	case price >= 100000:
		return fmt.Sprintf("₹%.2f L", float64(price)/100000)
	default:
		return "₹" + groupIndian(price)
	}
}

// groupIndian inserts separators the Indian way: last three digits, then pairs.
func groupIndian(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return sign + s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return sign + strings.Join(parts, ",") + "," + tail
}
