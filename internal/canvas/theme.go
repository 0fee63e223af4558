package canvas

// Theme is one of the two canvas color schemes.
type Theme struct {
	Name          string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
	Primary       string
	Secondary     string
	Accent        string
}

var (
	Summer = Theme{
		Name:          "summer",
		Background:    "#FEF4DE",
		Surface:       "#FFE69D",
		Text:          "#5D4037",
		TextSecondary: "#8D6E63",
		Border:        "#FFB904",
		Primary:       "#FFB904",
		Secondary:     "#FF9302",
		Accent:        "#FF9302",
	}

	Ocean = Theme{
		Name:          "ocean",
		Background:    "#E0FFDC",
		Surface:       "#39E6F4",
		Text:          "#1A365D",
		TextSecondary: "#2D5282",
		Border:        "#288CFF",
		Primary:       "#288CFF",
		Secondary:     "#3C67DC",
		Accent:        "#3C67DC",
	}
)

// ThemeByName falls back to the summer scheme for unknown names.
func ThemeByName(name string) Theme {
	if name == "ocean" {
		return Ocean
	}
	return Summer
}

// PriorityEmoji returns the badge emoji for a priority, empty when
// the goal has no priority.
func PriorityEmoji(p int) string {
	switch p {
	case 3:
		return "😡"
	case 2:
		return "😐"
	case 1:
		return "😊"
	}
	return ""
}

func PriorityColor(p int) string {
	switch p {
	case 3:
		return "#ff4757"
	case 2:
		return "#ffa502"
	case 1:
		return "#2ed573"
	}
	return "transparent"
}
