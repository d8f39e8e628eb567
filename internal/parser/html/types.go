package html

// RegionType identifies the kind of attribute a region was read from
type RegionType int

const (
	// UnknownRegion is the zero value, indicating an uninitialized region type
	UnknownRegion RegionType = iota
	// ClassAttribute represents a class="..." attribute
	ClassAttribute
	// UtilityAttribute represents an attribute named after a utility group,
	// e.g. scrollbar="~ rounded w-4px"
	UtilityAttribute
)

// Region represents an attribute value found in an HTML document
type Region struct {
	// Name is the attribute name
	Name      string
	Content   string
	StartLine uint
	StartCol  uint
	Type      RegionType
}
