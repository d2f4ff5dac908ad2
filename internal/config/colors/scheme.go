package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation dialogs
	Edit   string `yaml:"edit"`   // Blue - edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"` // Floating copy of the dragged entity

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.TaskBorder, preset.TaskBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.DragBorder, preset.DragBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
}

// MergeFrom overrides values with the non-empty fields of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Create, other.Create)
	merge(&c.Edit, other.Edit)
	merge(&c.Delete, other.Delete)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.TaskBorder, other.TaskBorder)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.DragBorder, other.DragBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
}
