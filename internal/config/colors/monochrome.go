package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#FFFFFF",
		TaskBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		DragBorder:     "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
