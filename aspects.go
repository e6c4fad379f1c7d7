package dayspark

// AspectCategory gates which aspect angles a query computes.
type AspectCategory uint8

const (
	// BasicAspects are conjunction and opposition, always computed.
	BasicAspects AspectCategory = iota + 1
	// AstrologyAspects adds the classical 60/90/120 set.
	AstrologyAspects
	// DeepAspects adds the minor angles.
	DeepAspects
)

// Aspect is a named angular separation between two bodies' ecliptic
// longitudes. The angle set is fixed and symmetric: every non-0/180 angle is
// checked at both the positive and negative separation.
type Aspect struct {
	Angle    float64
	Symbol   string
	Name     string
	Category AspectCategory
}

// aspectTable is the static aspect catalog, constant data.
var aspectTable = []Aspect{
	{0, "☌", "Conjunction", BasicAspects},
	{180, "☍", "Opposition", BasicAspects},
	{60, "⚹", "Sextile", AstrologyAspects},
	{90, "□", "Square", AstrologyAspects},
	{120, "△", "Trine", AstrologyAspects},
	{30, "⚺", "Semi-sextile", DeepAspects},
	{45, "∠", "Semi-square", DeepAspects},
	{72, "Q", "Quintile", DeepAspects},
	{135, "⚼", "Sesquiquadrate", DeepAspects},
	{144, "bQ", "Biquintile", DeepAspects},
}

// enabledAspects filters the catalog by feature flags.
func enabledAspects(f Features) []Aspect {
	out := make([]Aspect, 0, len(aspectTable))
	for _, a := range aspectTable {
		switch a.Category {
		case BasicAspects:
			out = append(out, a)
		case AstrologyAspects:
			if f.Astrology || f.DeepAstrology {
				out = append(out, a)
			}
		case DeepAspects:
			if f.DeepAstrology {
				out = append(out, a)
			}
		}
	}
	return out
}
